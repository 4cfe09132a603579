package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/knowmarket/packguard/internal/config"
	"github.com/knowmarket/packguard/internal/pack"
	"github.com/knowmarket/packguard/internal/rules"
	"github.com/knowmarket/packguard/internal/scan"
)

// loadPackage reads a package JSON file. Shape problems beyond JSON syntax
// are the scanner's job, not ours: a decodable file always scans.
func loadPackage(path string) (*pack.Package, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read package: %w", err)
	}

	var p pack.Package
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parse package %s: %w", path, err)
	}
	return &p, nil
}

// newScanner builds a scanner from the built-in catalog plus any user
// extension file.
func newScanner(cfg *config.Config) (*scan.Scanner, error) {
	catalog, err := rules.Load(cfg.CatalogPath)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	return scan.NewScanner(catalog), nil
}

func contentTypeFromFlag(value string) (pack.ContentType, error) {
	switch value {
	case "":
		return "", nil
	case string(pack.ContentKnowledge):
		return pack.ContentKnowledge, nil
	case string(pack.ContentImprint):
		return pack.ContentImprint, nil
	default:
		return "", fmt.Errorf("unknown content type %q (want knowledge or imprint)", value)
	}
}
