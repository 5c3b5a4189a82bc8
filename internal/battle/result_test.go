package battle

import (
	"encoding/json"
	"testing"
)

func TestResult_DrawWinnerKeepsKindKey(t *testing.T) {
	b, err := json.Marshal(Result{Winner: Winner{}, Seed: -4241220391792260015})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var out map[string]interface{}
	if err := json.Unmarshal(b, &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	winner := out["winner"].(map[string]interface{})
	kind, ok := winner["kind"]
	if !ok {
		t.Fatalf("draw winner must include kind, got %v", winner)
	}
	if kind != "" {
		t.Fatalf("draw winner kind = %v, want empty", kind)
	}
	if winner["id"] != nil || winner["name"] != nil {
		t.Fatalf("draw winner must have null id and name, got %v", winner)
	}
	if out["seed"] != "-4241220391792260015" {
		t.Fatalf("seed must keep every digit as a string, got %v", out["seed"])
	}

	var back Result
	if err := json.Unmarshal(b, &back); err != nil {
		t.Fatalf("decode typed: %v", err)
	}
	if back.Seed != -4241220391792260015 {
		t.Fatalf("seed round trip = %d", back.Seed)
	}
}
