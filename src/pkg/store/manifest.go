package store

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/andybalholm/brotli"

	tl "github.com/tuumbleweed/tintlog/logger"
	"github.com/tuumbleweed/tintlog/palette"
	"github.com/tuumbleweed/xerr"
)

// ManifestName is the batch record written next to the generated documents.
const ManifestName = "manifest.json.br"

type manifest struct {
	FinishedAt string   `json:"finished_at"`
	Generated  []string `json:"generated"`
	Messages   []string `json:"messages"`
}

/*
WriteManifest records the outcome of one batch as brotli-compressed JSON in
the output directory, so a run can be audited after the HTTP response (or
CLI process) is gone.
*/
func WriteManifest(dir string, generated []string, messages []string) *xerr.Error {
	record := manifest{
		FinishedAt: time.Now().UTC().Format(time.RFC3339),
		Generated:  generated,
		Messages:   messages,
	}

	jsonBytes, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return xerr.NewError(err, "marshal batch manifest", dir)
	}

	path := filepath.Join(dir, ManifestName)
	file, err := os.Create(path)
	if err != nil {
		return xerr.NewError(err, "create batch manifest file", path)
	}
	defer file.Close()

	writer := brotli.NewWriter(file)
	if _, err := writer.Write(jsonBytes); err != nil {
		return xerr.NewError(err, "compress batch manifest", path)
	}
	if err := writer.Close(); err != nil {
		return xerr.NewError(err, "finish batch manifest", path)
	}

	tl.Log(tl.Info, palette.Green, "%s '%s'", "Saved batch manifest", path)
	return nil
}

// ReadManifest decompresses and decodes a previously written manifest.
// Mostly a debugging aid.
func ReadManifest(dir string) (generated []string, messages []string, e *xerr.Error) {
	path := filepath.Join(dir, ManifestName)
	file, err := os.Open(path)
	if err != nil {
		e = xerr.NewError(err, "open batch manifest", path)
		return
	}
	defer file.Close()

	var record manifest
	if err := json.NewDecoder(brotli.NewReader(file)).Decode(&record); err != nil {
		e = xerr.NewError(err, "decode batch manifest", path)
		return
	}
	return record.Generated, record.Messages, nil
}
