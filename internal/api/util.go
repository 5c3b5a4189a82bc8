package api

import "encoding/json"

// gormKeys maps the untagged gorm.Model fields to the snake_case keys
// clients expect.
var gormKeys = map[string]string{
	"ID":        "id",
	"CreatedAt": "created_at",
	"UpdatedAt": "updated_at",
	"DeletedAt": "deleted_at",
}

// normalizeKeys recursively renames gorm.Model keys (ID, CreatedAt,
// UpdatedAt, DeletedAt) to snake_case.
func normalizeKeys(v interface{}) interface{} {
	switch vv := v.(type) {
	case map[string]interface{}:
		for k, val := range vv {
			vv[k] = normalizeKeys(val)
		}
		for from, to := range gormKeys {
			if val, ok := vv[from]; ok {
				vv[to] = val
				delete(vv, from)
			}
		}
		return vv
	case []interface{}:
		for i := range vv {
			vv[i] = normalizeKeys(vv[i])
		}
		return vv
	default:
		return v
	}
}

// MarshalIntoSnakeKeys marshals v into JSON, decodes it into an
// interface{} and normalizes gorm.Model keys to snake_case.
func MarshalIntoSnakeKeys(v interface{}) (interface{}, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var out interface{}
	if err := json.Unmarshal(b, &out); err != nil {
		return nil, err
	}
	return normalizeKeys(out), nil
}
