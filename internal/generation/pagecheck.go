package generation

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/rs/zerolog"
)

// PageReport summarizes the structure of a generated page.
type PageReport struct {
	Title        string
	Sections     int
	Links        int
	EmptyLinks   int
	HasDoctype   bool
	HasAOSMarker bool
}

// InspectPage parses the final markup and reports structural facts about it.
// Defects are logged as warnings; inspection never fails the pipeline.
func InspectPage(html string, log zerolog.Logger) PageReport {
	report := PageReport{
		HasDoctype:   strings.HasPrefix(strings.ToLower(strings.TrimSpace(html)), "<!doctype"),
		HasAOSMarker: strings.Contains(strings.ToLower(html), fixMarker),
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		log.Warn().Err(err).Msg("could not parse generated page")
		return report
	}

	report.Title = strings.TrimSpace(doc.Find("title").First().Text())
	report.Sections = doc.Find("section").Length()

	doc.Find("a").Each(func(_ int, s *goquery.Selection) {
		report.Links++
		if href, ok := s.Attr("href"); !ok || strings.TrimSpace(href) == "" || href == "#" {
			report.EmptyLinks++
		}
	})

	if !report.HasDoctype {
		log.Warn().Msg("page is missing a doctype declaration")
	}
	if report.Title == "" {
		log.Warn().Msg("page is missing a <title>")
	}
	if report.EmptyLinks > 0 {
		log.Warn().Int("count", report.EmptyLinks).Msg("page contains placeholder links")
	}

	log.Debug().
		Str("title", report.Title).
		Int("sections", report.Sections).
		Int("links", report.Links).
		Msg("page inspection complete")

	return report
}
