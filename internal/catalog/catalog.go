package catalog

// POI is one catalog entry. The catalog is loaded once at startup and
// never mutated afterwards, so POIs are shared freely between requests.
type POI struct {
	ID            string
	Name          string
	Lat           float64
	Lon           float64
	Category      string // case-folded
	PriceTier     string // "$", "$$", "$$$"
	AvgDwellMin   int
	AdmissionCost float64
	OpenFrom      int // minutes past midnight
	OpenTo        int
	Tags          []string
}

type Catalog struct {
	pois []POI
	byID map[string]int
}

func New(pois []POI) *Catalog {
	byID := make(map[string]int, len(pois))
	for i, p := range pois {
		if _, ok := byID[p.ID]; !ok {
			byID[p.ID] = i
		}
	}
	return &Catalog{pois: pois, byID: byID}
}

// All returns the POIs in catalog order. Callers must not modify the slice.
func (c *Catalog) All() []POI {
	return c.pois
}

func (c *Catalog) Len() int {
	return len(c.pois)
}

func (c *Catalog) ByID(id string) (POI, bool) {
	i, ok := c.byID[id]
	if !ok {
		return POI{}, false
	}
	return c.pois[i], true
}
