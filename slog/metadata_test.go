package slog_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/sitemeta/sitemeta"
	"github.com/sitemeta/sitemeta/mock"
	siteslog "github.com/sitemeta/sitemeta/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingMetadataService_ToolMetadata(t *testing.T) {
	t.Parallel()

	t.Run("logs each advisory", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.MetadataService{
			ToolMetadataFn: func(site *sitemeta.Site, tool *sitemeta.Tool) (*sitemeta.Metadata, []sitemeta.Advisory, error) {
				return &sitemeta.Metadata{Title: "JSON Formatter"}, []sitemeta.Advisory{
					{Route: "/json-formatter", Field: "title", Message: "title exceeds 60 characters"},
				}, nil
			},
		}

		svc := siteslog.NewLoggingMetadataService(inner, logger)
		meta, advisories, err := svc.ToolMetadata(&sitemeta.Site{}, &sitemeta.Tool{})

		require.NoError(t, err)
		require.NotNil(t, meta)
		assert.Len(t, advisories, 1)

		output := buf.String()
		assert.Contains(t, output, "metadata advisory")
		assert.Contains(t, output, "route=/json-formatter")
		assert.Contains(t, output, "field=title")
		assert.Contains(t, output, "title exceeds 60 characters")
	})

	t.Run("stays quiet without advisories", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.MetadataService{
			ToolMetadataFn: func(site *sitemeta.Site, tool *sitemeta.Tool) (*sitemeta.Metadata, []sitemeta.Advisory, error) {
				return &sitemeta.Metadata{Title: "JSON Formatter"}, nil, nil
			},
		}

		svc := siteslog.NewLoggingMetadataService(inner, logger)
		_, _, err := svc.ToolMetadata(&sitemeta.Site{}, &sitemeta.Tool{})

		require.NoError(t, err)
		assert.Empty(t, buf.String())
	})
}

func TestLoggingMetadataService_PostMetadata(t *testing.T) {
	t.Parallel()

	t.Run("logs summarizer fallback advisories", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.MetadataService{
			PostMetadataFn: func(site *sitemeta.Site, post *sitemeta.BlogPost) (*sitemeta.Metadata, []sitemeta.Advisory, error) {
				return &sitemeta.Metadata{}, []sitemeta.Advisory{
					{Route: "/blog/a", Field: "description", Message: "description empty"},
					{Route: "/blog/a", Field: "title", Message: "title exceeds 60 characters"},
				}, nil
			},
		}

		svc := siteslog.NewLoggingMetadataService(inner, logger)
		_, advisories, err := svc.PostMetadata(&sitemeta.Site{}, &sitemeta.BlogPost{})

		require.NoError(t, err)
		assert.Len(t, advisories, 2)
		assert.Equal(t, 2, bytes.Count(buf.Bytes(), []byte("metadata advisory")))
	})
}
