// Package converter provides conversions between wire and model types
package converter

import (
	"fmt"
	"math"

	"google.golang.org/protobuf/types/known/structpb"

	"github.com/napolitain/solver-estate/internal/models"
)

// Field names of the allocation struct on the wire
const (
	FieldBudget   = "budget"
	FieldEarnings = "earnings"
	FieldActions  = "actions"

	FieldBuilding = "building"
	FieldStart    = "start"
	FieldEnd      = "end"
)

// ProtoToModelBuildingType converts a wire building name to a model BuildingType
func ProtoToModelBuildingType(name string) (models.BuildingType, error) {
	bt := models.BuildingType(name)
	if _, ok := models.GetBuilding(bt); !ok {
		return "", fmt.Errorf("unknown building type %q", name)
	}
	return bt, nil
}

// ModelToProtoBuildingType converts a model BuildingType to its wire name,
// which doubles as the count field key of the allocation struct
func ModelToProtoBuildingType(bt models.BuildingType) string {
	return string(bt)
}

// intField reads an integral number field from a struct
func intField(s *structpb.Struct, key string) (int, error) {
	v, ok := s.GetFields()[key]
	if !ok {
		return 0, fmt.Errorf("missing field %q", key)
	}
	num, ok := v.GetKind().(*structpb.Value_NumberValue)
	if !ok {
		return 0, fmt.Errorf("field %q is not a number", key)
	}
	if num.NumberValue != math.Trunc(num.NumberValue) {
		return 0, fmt.Errorf("field %q is not an integer: %v", key, num.NumberValue)
	}
	return int(num.NumberValue), nil
}
