package planner

import "strings"

// WeightProfile selects the scoring weights.
type WeightProfile int

const (
	ProfileExplorer WeightProfile = iota
	ProfileBudget
)

// Family selects which planner drives each day.
type Family int

const (
	FamilyGreedy Family = iota
	FamilySearch
)

func (f Family) String() string {
	if f == FamilySearch {
		return "astar"
	}
	return "greedy"
}

// Strategy pairs a weight profile with a planner family.
type Strategy struct {
	Profile WeightProfile
	Family  Family
}

var (
	BudgetGreedy   = Strategy{Profile: ProfileBudget, Family: FamilyGreedy}
	ExplorerGreedy = Strategy{Profile: ProfileExplorer, Family: FamilyGreedy}
	BudgetSearch   = Strategy{Profile: ProfileBudget, Family: FamilySearch}
	ExplorerSearch = Strategy{Profile: ProfileExplorer, Family: FamilySearch}
)

// ParseStrategy maps a request tag onto a Strategy. A "search" marker
// anywhere in the tag selects the A* family; the profile is matched after
// stripping that marker. Anything unrecognized degrades to ExplorerGreedy.
func ParseStrategy(tag string) Strategy {
	t := strings.ToLower(strings.TrimSpace(tag))

	family := FamilyGreedy
	if strings.Contains(t, "search") || strings.Contains(t, "astar") {
		family = FamilySearch
	}

	profile := ProfileExplorer
	if strings.Contains(t, "budget") {
		profile = ProfileBudget
	}

	return Strategy{Profile: profile, Family: family}
}
