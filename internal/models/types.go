package models

// BuildingType represents the different building types
type BuildingType string

const (
	Theatre        BuildingType = "theatre"
	Pub            BuildingType = "pub"
	CommercialPark BuildingType = "commercial_park"
)

// AllBuildingTypes returns all building types in evaluation order
func AllBuildingTypes() []BuildingType {
	return []BuildingType{Theatre, Pub, CommercialPark}
}

// DisplayName returns the human readable name of the building type
func (bt BuildingType) DisplayName() string {
	switch bt {
	case Theatre:
		return "Theatre"
	case Pub:
		return "Pub"
	case CommercialPark:
		return "Commercial Park"
	}
	return string(bt)
}

// Building holds the immutable attributes of a building type
type Building struct {
	Type     BuildingType
	Duration int // time units to construct
	Rate     int // earnings per credited time unit
}

// Catalog returns the fixed building catalog in evaluation order.
// A fresh slice is returned on every call so callers cannot mutate it.
func Catalog() []Building {
	return []Building{
		{Type: Theatre, Duration: 5, Rate: 1500},
		{Type: Pub, Duration: 4, Rate: 1000},
		{Type: CommercialPark, Duration: 10, Rate: 2000},
	}
}

// GetBuilding looks up a building in the catalog
func GetBuilding(bt BuildingType) (Building, bool) {
	for _, b := range Catalog() {
		if b.Type == bt {
			return b, true
		}
	}
	return Building{}, false
}

// BuildingCounts is a deterministic struct for per-type counts (replaces map[BuildingType]int)
type BuildingCounts struct {
	Theatre        int
	Pub            int
	CommercialPark int
}

// Get returns the count for a building type
func (c *BuildingCounts) Get(bt BuildingType) int {
	switch bt {
	case Theatre:
		return c.Theatre
	case Pub:
		return c.Pub
	case CommercialPark:
		return c.CommercialPark
	}
	return 0
}

// Set sets the count for a building type
func (c *BuildingCounts) Set(bt BuildingType, count int) {
	switch bt {
	case Theatre:
		c.Theatre = count
	case Pub:
		c.Pub = count
	case CommercialPark:
		c.CommercialPark = count
	}
}

// Inc increments the count for a building type
func (c *BuildingCounts) Inc(bt BuildingType) {
	c.Set(bt, c.Get(bt)+1)
}

// Each iterates over all building types in deterministic order
func (c *BuildingCounts) Each(fn func(BuildingType, int)) {
	fn(Theatre, c.Theatre)
	fn(Pub, c.Pub)
	fn(CommercialPark, c.CommercialPark)
}

// Total returns the number of buildings
func (c *BuildingCounts) Total() int {
	return c.Theatre + c.Pub + c.CommercialPark
}

// TotalDuration returns the construction time occupied by all buildings
func (c *BuildingCounts) TotalDuration() int {
	total := 0
	for _, b := range Catalog() {
		total += c.Get(b.Type) * b.Duration
	}
	return total
}

// BuildingAction represents one building in a construction plan
type BuildingAction struct {
	BuildingType BuildingType
	StartTime    int
	EndTime      int
	Earnings     int // credited earnings for this building
}

// Duration returns the construction time of the action
func (a BuildingAction) Duration() int {
	return a.EndTime - a.StartTime
}

// Allocation is the result of one optimization query
type Allocation struct {
	Budget          int
	Earnings        int
	Counts          BuildingCounts
	BuildingActions []BuildingAction // one plan realizing Counts, in construction order
}

// TotalDuration returns the construction time used by the allocation
func (a *Allocation) TotalDuration() int {
	return a.Counts.TotalDuration()
}

// IdleTime returns the unused part of the budget
func (a *Allocation) IdleTime() int {
	return a.Budget - a.TotalDuration()
}
