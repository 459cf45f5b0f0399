package elastic_client

import (
	"bytes"
	"encoding/json"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/travigo/ridesharing/pkg/ridesharing"
)

type fetchReportDocument struct {
	Timestamp time.Time `json:"@timestamp"`

	Request  string `json:"request"`
	Duration int64  `json:"duration_ms"`

	Provider string `json:"provider"`
	Offers   int    `json:"offers"`
	Latency  int64  `json:"latency_ms"`
	Skipped  bool   `json:"skipped"`
	Error    string `json:"error,omitempty"`
	Kind     string `json:"kind,omitempty"`
}

// ReportIndexer writes one document per provider for every fetch report
type ReportIndexer struct {
	IndexName string
}

func (r *ReportIndexer) IndexFetchReport(report ridesharing.FetchReport) {
	for _, document := range fetchReportDocuments(report) {
		encoded, err := json.Marshal(document)
		if err != nil {
			log.Error().Err(err).Msg("Failed to encode fetch report")
			continue
		}

		IndexRequest(r.IndexName, bytes.NewReader(encoded))
	}
}

func fetchReportDocuments(report ridesharing.FetchReport) []fetchReportDocument {
	documents := []fetchReportDocument{}

	for _, provider := range report.Providers {
		documents = append(documents, fetchReportDocument{
			Timestamp: report.StartedAt,
			Request:   report.Request,
			Duration:  report.Duration.Milliseconds(),
			Provider:  provider.Provider,
			Offers:    provider.Offers,
			Latency:   provider.Latency.Milliseconds(),
			Skipped:   provider.Skipped,
			Error:     provider.Error,
			Kind:      string(provider.Kind),
		})
	}

	return documents
}
