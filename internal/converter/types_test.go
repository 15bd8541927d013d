package converter

import (
	"testing"

	"google.golang.org/protobuf/types/known/structpb"

	"github.com/napolitain/solver-estate/internal/models"
)

func TestBuildingTypeRoundTrip(t *testing.T) {
	for _, bt := range models.AllBuildingTypes() {
		got, err := ProtoToModelBuildingType(ModelToProtoBuildingType(bt))
		if err != nil {
			t.Errorf("ProtoToModelBuildingType(%s) failed: %v", bt, err)
			continue
		}
		if got != bt {
			t.Errorf("Round trip of %s gave %s", bt, got)
		}
	}
}

func TestProtoToModelBuildingTypeUnknown(t *testing.T) {
	for _, name := range []string{"", "castle", "Theatre"} {
		if _, err := ProtoToModelBuildingType(name); err == nil {
			t.Errorf("ProtoToModelBuildingType(%q) should fail", name)
		}
	}
}

func TestIntField(t *testing.T) {
	s, err := structpb.NewStruct(map[string]any{
		"int":    42,
		"frac":   1.5,
		"string": "x",
	})
	if err != nil {
		t.Fatalf("NewStruct failed: %v", err)
	}

	tests := []struct {
		key     string
		want    int
		wantErr bool
	}{
		{"int", 42, false},
		{"frac", 0, true},
		{"string", 0, true},
		{"missing", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			got, err := intField(s, tt.key)
			if (err != nil) != tt.wantErr {
				t.Fatalf("intField(%q) error = %v, wantErr %v", tt.key, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("intField(%q) = %d, want %d", tt.key, got, tt.want)
			}
		})
	}
}
