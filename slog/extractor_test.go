package slog_test

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/fwojciec/serpjson"
	"github.com/fwojciec/serpjson/mock"
	serpslog "github.com/fwojciec/serpjson/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("logs categories, organic count, and duration", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Extractor{
			ExtractFn: func(html string) (*serpjson.Record, error) {
				return &serpjson.Record{
					SearchMetadata: &serpjson.SearchMetadata{Status: "success"},
					OrganicResults: []serpjson.OrganicResult{{Position: 1}, {Position: 2}},
				}, nil
			},
		}

		ext := serpslog.NewLoggingExtractor(inner, logger)
		rec, err := ext.Extract("<html></html>")

		require.NoError(t, err)
		assert.Len(t, rec.OrganicResults, 2)
		output := buf.String()
		assert.Contains(t, output, "msg=extract")
		assert.Contains(t, output, "bytes=13")
		assert.Contains(t, output, "categories=2")
		assert.Contains(t, output, "organic=2")
		assert.Contains(t, output, "duration=")
	})

	t.Run("logs error on failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Extractor{
			ExtractFn: func(html string) (*serpjson.Record, error) {
				return nil, errors.New("parse failed")
			},
		}

		ext := serpslog.NewLoggingExtractor(inner, logger)
		_, err := ext.Extract("<html>")

		require.Error(t, err)
		output := buf.String()
		assert.Contains(t, output, "categories=0")
		assert.Contains(t, output, "err=\"parse failed\"")
	})
}
