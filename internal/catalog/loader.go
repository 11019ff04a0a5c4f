package catalog

import (
	"github.com/spf13/viper"

	"jobfit/internal/errors"
	"jobfit/internal/types"
)

// fileDocument is the shape of a catalog file. When ExtendBuiltin is set
// the file's profiles are appended to the built-in set, overriding
// built-in entries with the same key; otherwise the file replaces the
// built-ins entirely.
type fileDocument struct {
	ExtendBuiltin bool               `mapstructure:"extendBuiltin"`
	Profiles      []types.JobProfile `mapstructure:"profiles"`
}

// LoadFile reads a YAML catalog file and returns the resulting profile
// set along with the keys of any profiles whose weights do not sum to 1.0.
func LoadFile(path string) (*Static, []string, error) {
	v := viper.New()
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		return nil, nil, errors.NewConfigError(
			errors.ErrCodeCatalogLoadFailed,
			"failed to read catalog file",
			err,
		).WithContext("path", path)
	}

	var doc fileDocument
	if err := v.Unmarshal(&doc); err != nil {
		return nil, nil, errors.NewConfigError(
			errors.ErrCodeCatalogLoadFailed,
			"failed to parse catalog file",
			err,
		).WithContext("path", path)
	}

	if len(doc.Profiles) == 0 {
		return nil, nil, errors.NewConfigError(
			errors.ErrCodeCatalogLoadFailed,
			"catalog file defines no profiles",
			nil,
		).WithContext("path", path)
	}

	profiles := doc.Profiles
	if doc.ExtendBuiltin {
		profiles = mergeProfiles(builtinProfiles(), doc.Profiles)
	}

	return NewStatic(profiles)
}

// mergeProfiles overlays the override profiles on the base set, keeping
// base order for overridden keys and appending new keys at the end.
func mergeProfiles(base, overrides []types.JobProfile) []types.JobProfile {
	overrideIndex := make(map[string]types.JobProfile, len(overrides))
	for _, p := range overrides {
		overrideIndex[p.Key] = p
	}

	merged := make([]types.JobProfile, 0, len(base)+len(overrides))
	seen := make(map[string]bool, len(base))
	for _, p := range base {
		if override, ok := overrideIndex[p.Key]; ok {
			merged = append(merged, override)
		} else {
			merged = append(merged, p)
		}
		seen[p.Key] = true
	}
	for _, p := range overrides {
		if !seen[p.Key] {
			merged = append(merged, p)
		}
	}
	return merged
}
