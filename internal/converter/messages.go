package converter

import (
	"fmt"

	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"github.com/napolitain/solver-estate/internal/models"
)

// BudgetToProto wraps a time budget into the request message
func BudgetToProto(budget int) *wrapperspb.Int64Value {
	return wrapperspb.Int64(int64(budget))
}

// ProtoToBudget unwraps the request message. A nil request is budget 0.
func ProtoToBudget(req *wrapperspb.Int64Value) int {
	return int(req.GetValue())
}

// AllocationToProto converts an Allocation to the response struct
func AllocationToProto(a *models.Allocation) (*structpb.Struct, error) {
	fields := map[string]any{
		FieldBudget:   a.Budget,
		FieldEarnings: a.Earnings,
	}
	a.Counts.Each(func(bt models.BuildingType, count int) {
		fields[ModelToProtoBuildingType(bt)] = count
	})

	actions := make([]any, 0, len(a.BuildingActions))
	for _, action := range a.BuildingActions {
		actions = append(actions, BuildingActionToProto(action))
	}
	fields[FieldActions] = actions

	return structpb.NewStruct(fields)
}

// BuildingActionToProto converts a BuildingAction to a plain map for structpb
func BuildingActionToProto(action models.BuildingAction) map[string]any {
	return map[string]any{
		FieldBuilding: ModelToProtoBuildingType(action.BuildingType),
		FieldStart:    action.StartTime,
		FieldEnd:      action.EndTime,
		FieldEarnings: action.Earnings,
	}
}

// ProtoToAllocation converts a response struct back to an Allocation
func ProtoToAllocation(s *structpb.Struct) (*models.Allocation, error) {
	a := &models.Allocation{}

	var err error
	if a.Budget, err = intField(s, FieldBudget); err != nil {
		return nil, err
	}
	if a.Earnings, err = intField(s, FieldEarnings); err != nil {
		return nil, err
	}

	for _, bt := range models.AllBuildingTypes() {
		count, err := intField(s, ModelToProtoBuildingType(bt))
		if err != nil {
			return nil, err
		}
		a.Counts.Set(bt, count)
	}

	for i, v := range s.GetFields()[FieldActions].GetListValue().GetValues() {
		action, err := protoToBuildingAction(v.GetStructValue())
		if err != nil {
			return nil, fmt.Errorf("action %d: %w", i, err)
		}
		a.BuildingActions = append(a.BuildingActions, action)
	}

	return a, nil
}

func protoToBuildingAction(s *structpb.Struct) (models.BuildingAction, error) {
	var action models.BuildingAction
	if s == nil {
		return action, fmt.Errorf("not a struct")
	}

	bt, err := ProtoToModelBuildingType(s.GetFields()[FieldBuilding].GetStringValue())
	if err != nil {
		return action, err
	}
	action.BuildingType = bt

	if action.StartTime, err = intField(s, FieldStart); err != nil {
		return action, err
	}
	if action.EndTime, err = intField(s, FieldEnd); err != nil {
		return action, err
	}
	if action.Earnings, err = intField(s, FieldEarnings); err != nil {
		return action, err
	}
	return action, nil
}
