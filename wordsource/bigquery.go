package wordsource

import (
	"context"
	"fmt"

	"cloud.google.com/go/bigquery"
	"github.com/rs/zerolog/log"
	"google.golang.org/api/iterator"
)

// BigQuerySource reads words from a single string column of a BigQuery
// table, in the order given by that column.
type BigQuerySource struct {
	Project  string
	Table    string // project.dataset.table
	Column   string
	Location string
}

func (b BigQuerySource) Identity() string {
	return fmt.Sprintf("bigquery:%s.%s", b.Table, b.Column)
}

func (b BigQuerySource) query() string {
	return fmt.Sprintf("SELECT %s FROM `%s` ORDER BY %s", b.Column, b.Table, b.Column)
}

func (b BigQuerySource) Words(ctx context.Context) ([]string, error) {
	client, err := bigquery.NewClient(ctx, b.Project)
	if err != nil {
		return nil, fmt.Errorf("bigquery.NewClient: %w", err)
	}
	defer client.Close()

	q := client.Query(b.query())
	if b.Location != "" {
		q.Location = b.Location
	}
	it, err := q.Read(ctx)
	if err != nil {
		return nil, fmt.Errorf("q.Read: %w", err)
	}

	var words []string
	for {
		var row []bigquery.Value
		err := it.Next(&row)
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("it.Next: %w", err)
		}
		raw, err := wordFromRow(row)
		if err != nil {
			return nil, err
		}
		if word, ok := accept(raw); ok {
			words = append(words, word)
		}
	}
	log.Debug().Str("table", b.Table).Int("words", len(words)).Msg("loaded-bigquery-words")
	return words, nil
}

func wordFromRow(row []bigquery.Value) (string, error) {
	if len(row) == 0 {
		return "", fmt.Errorf("empty row")
	}
	word, ok := row[0].(string)
	if !ok {
		return "", fmt.Errorf("row[0] is not a string: %v", row[0])
	}
	return word, nil
}
