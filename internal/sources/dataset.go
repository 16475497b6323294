package sources

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/pranav/placement-helper/internal/dataset"
	"github.com/pranav/placement-helper/internal/types"
)

// DatasetAdapter resolves names against the in-memory bulk company dataset.
type DatasetAdapter struct {
	loader *dataset.Loader
}

// NewDatasetAdapter creates the dataset adapter over a loader.
func NewDatasetAdapter(loader *dataset.Loader) *DatasetAdapter {
	return &DatasetAdapter{loader: loader}
}

// Name implements Adapter.
func (a *DatasetAdapter) Name() string { return "dataset" }

// TryResolve looks the name up through the loader's tiered matcher and maps
// the row to a partial profile. An empty dataset is simply "no match".
func (a *DatasetAdapter) TryResolve(ctx context.Context, name string) (*types.CompanyProfile, error) {
	record := a.loader.Find(ctx, name)
	if record == nil {
		return nil, nil
	}

	p := types.NewProfile(displayName(record.Name), types.SourceDataset)
	p.Industry = capitalize(record.Industry)

	if record.YearFounded > 0 {
		p.Founded = strconv.Itoa(record.YearFounded)
	}
	if hq := joinLocation(record.Locality, record.Country); hq != "" {
		p.Headquarters = hq
	}
	if record.CurrentEmployees > 0 {
		p.EmployeeCount = fmt.Sprintf("%s employees (current estimate)", formatCount(record.CurrentEmployees))
	} else if record.SizeRange != dataset.SizeUnavailable {
		p.EmployeeCount = record.SizeRange + " employees"
	}
	if record.Domain != "" {
		p.Website = "https://" + record.Domain
	}

	p.Description = datasetDescription(p.Name, p.Industry, record)
	return p, nil
}

func datasetDescription(name, industry string, record *dataset.Record) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s is a company in the %s industry", name, strings.ToLower(industry))
	if loc := joinLocation(record.Locality, record.Country); loc != "" {
		fmt.Fprintf(&b, ", based in %s", loc)
	}
	if record.YearFounded > 0 {
		fmt.Fprintf(&b, ", founded in %d", record.YearFounded)
	}
	b.WriteString(".")
	return b.String()
}

func displayName(raw string) string {
	// Dataset names are lowercased; present them in title case.
	words := strings.Fields(raw)
	for i, w := range words {
		words[i] = capitalize(w)
	}
	return strings.Join(words, " ")
}

func joinLocation(locality, country string) string {
	locality = strings.TrimSpace(locality)
	country = strings.TrimSpace(country)
	switch {
	case locality != "" && country != "":
		return titleWords(locality) + ", " + titleWords(country)
	case locality != "":
		return titleWords(locality)
	case country != "":
		return titleWords(country)
	default:
		return ""
	}
}

func titleWords(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = capitalize(w)
	}
	return strings.Join(words, " ")
}

func formatCount(n int) string {
	s := strconv.Itoa(n)
	if len(s) <= 3 {
		return s
	}
	var b strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteString(",")
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}
