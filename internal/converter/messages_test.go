package converter

import (
	"testing"

	"google.golang.org/protobuf/types/known/structpb"

	"github.com/napolitain/solver-estate/internal/models"
)

func sampleAllocation() *models.Allocation {
	return &models.Allocation{
		Budget:   10,
		Earnings: 8500,
		Counts:   models.BuildingCounts{Theatre: 1, Pub: 1},
		BuildingActions: []models.BuildingAction{
			{BuildingType: models.Pub, StartTime: 1, EndTime: 5, Earnings: 1000},
			{BuildingType: models.Theatre, StartTime: 5, EndTime: 10, Earnings: 7500},
		},
	}
}

func TestBudgetToProto(t *testing.T) {
	if got := ProtoToBudget(BudgetToProto(30)); got != 30 {
		t.Errorf("Budget round trip gave %d, want 30", got)
	}
	if got := ProtoToBudget(nil); got != 0 {
		t.Errorf("ProtoToBudget(nil) = %d, want 0", got)
	}
}

func TestAllocationToProtoFields(t *testing.T) {
	s, err := AllocationToProto(sampleAllocation())
	if err != nil {
		t.Fatalf("AllocationToProto failed: %v", err)
	}

	fields := s.GetFields()
	expected := map[string]float64{
		FieldBudget:       10,
		FieldEarnings:     8500,
		"theatre":         1,
		"pub":             1,
		"commercial_park": 0,
	}
	for key, want := range expected {
		if got := fields[key].GetNumberValue(); got != want {
			t.Errorf("Field %s = %v, want %v", key, got, want)
		}
	}

	actions := fields[FieldActions].GetListValue().GetValues()
	if len(actions) != 2 {
		t.Fatalf("Got %d actions, want 2", len(actions))
	}
	first := actions[0].GetStructValue().GetFields()
	if first[FieldBuilding].GetStringValue() != "pub" {
		t.Errorf("First action building = %q, want pub", first[FieldBuilding].GetStringValue())
	}
}

func TestAllocationRoundTrip(t *testing.T) {
	want := sampleAllocation()

	s, err := AllocationToProto(want)
	if err != nil {
		t.Fatalf("AllocationToProto failed: %v", err)
	}
	got, err := ProtoToAllocation(s)
	if err != nil {
		t.Fatalf("ProtoToAllocation failed: %v", err)
	}

	if got.Budget != want.Budget || got.Earnings != want.Earnings || got.Counts != want.Counts {
		t.Errorf("Round trip = %+v, want %+v", got, want)
	}
	if len(got.BuildingActions) != len(want.BuildingActions) {
		t.Fatalf("Round trip has %d actions, want %d", len(got.BuildingActions), len(want.BuildingActions))
	}
	for i := range want.BuildingActions {
		if got.BuildingActions[i] != want.BuildingActions[i] {
			t.Errorf("Action %d = %+v, want %+v", i, got.BuildingActions[i], want.BuildingActions[i])
		}
	}
}

func TestAllocationToProtoEmptyPlan(t *testing.T) {
	s, err := AllocationToProto(&models.Allocation{})
	if err != nil {
		t.Fatalf("AllocationToProto failed: %v", err)
	}

	got, err := ProtoToAllocation(s)
	if err != nil {
		t.Fatalf("ProtoToAllocation failed: %v", err)
	}
	if len(got.BuildingActions) != 0 {
		t.Errorf("Expected no actions, got %d", len(got.BuildingActions))
	}
}

func TestProtoToAllocationErrors(t *testing.T) {
	tests := []struct {
		name   string
		fields map[string]any
	}{
		{"missing earnings", map[string]any{
			FieldBudget: 5, "theatre": 0, "pub": 1, "commercial_park": 0,
		}},
		{"missing count", map[string]any{
			FieldBudget: 5, FieldEarnings: 1000, "theatre": 0, "pub": 1,
		}},
		{"bad action building", map[string]any{
			FieldBudget: 5, FieldEarnings: 1000, "theatre": 0, "pub": 1, "commercial_park": 0,
			FieldActions: []any{map[string]any{FieldBuilding: "castle", FieldStart: 1, FieldEnd: 5, FieldEarnings: 1000}},
		}},
		{"action not a struct", map[string]any{
			FieldBudget: 5, FieldEarnings: 1000, "theatre": 0, "pub": 1, "commercial_park": 0,
			FieldActions: []any{"pub"},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := structpb.NewStruct(tt.fields)
			if err != nil {
				t.Fatalf("NewStruct failed: %v", err)
			}
			if _, err := ProtoToAllocation(s); err == nil {
				t.Error("Expected error")
			}
		})
	}
}
