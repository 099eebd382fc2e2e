package memstore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jhoicas/Spacity-api/internal/domain/entity"
	"gopkg.in/yaml.v3"
)

// LoadSnapshotFile lee un snapshot inicial desde JSON o YAML (.yaml/.yml). Las claves son
// las mismas en ambos formatos: branches, services, therapists, bookings, inventory, con
// campos camelCase.
func LoadSnapshotFile(path string) (*entity.Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("memstore: leer snapshot: %w", err)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if data, err = yamlToJSON(data); err != nil {
			return nil, fmt.Errorf("memstore: parsear snapshot yaml: %w", err)
		}
	}
	var snap entity.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("memstore: parsear snapshot: %w", err)
	}
	return &snap, nil
}

// yamlToJSON pasa por un árbol genérico para reutilizar los tags json de las entidades
// (decimal.Decimal solo sabe decodificarse desde JSON o texto).
func yamlToJSON(data []byte) ([]byte, error) {
	var tree any
	if err := yaml.Unmarshal(data, &tree); err != nil {
		return nil, err
	}
	return json.Marshal(tree)
}
