package smarts

import (
	"fmt"
	"sort"
)

// Ground-cover materials accepted on Cards 10 and 10c (IALBDX/IALBDG).
// Names and codes follow the SMARTS 2.9.5 albedo file list; the table is
// static and not user-configurable.
var materialCodes = map[string]int{
	"UsrLamb":      0,  // User-defined spectral reflectance, Lambertian
	"UsrNLamb":     1,  // User-defined spectral reflectance, non-Lambertian
	"Water":        2,  // Water or calm ocean (calculated)
	"Snow":         3,  // Fresh dry snow
	"Neve":         4,  // Snow on a mountain neve
	"Basalt":       5,  // Basalt rock
	"Dry_sand":     6,  // Dry sand
	"WiteSand":     7,  // Sand from White Sands, NM
	"Soil":         8,  // Bare soil
	"Dry_clay":     9,  // Dry clay soil
	"Wet_clay":     10, // Wet clay soil
	"Alfalfa":      11, // Alfalfa
	"Grass":        12, // Green grass
	"RyeGrass":     13, // Perennial rye grass
	"Meadow1":      14, // Alpine meadow
	"Meadow2":      15, // Lush meadow
	"Wheat":        16, // Wheat crop
	"PineTree":     17, // Ponderosa pine tree
	"Concrete":     18, // Concrete slab
	"BlckLoam":     19, // Black loam
	"BrwnLoam":     20, // Brown loam
	"BrwnSand":     21, // Brown sand
	"Conifers":     22, // Conifer trees
	"DarkLoam":     23, // Dark loam
	"DarkSand":     24, // Dark sand
	"Decidous":     25, // Decidous trees
	"DryGrass":     26, // Dry grass (sod)
	"DuneSand":     27, // Dune sand
	"FineSnow":     28, // Fresh fine snow
	"GrnGrass":     29, // Green rye grass (sod)
	"GrnlSnow":     30, // Granular snow
	"LiteClay":     31, // Light clay
	"LiteLoam":     32, // Light loam
	"LiteSand":     33, // Light sand
	"PaleLoam":     34, // Pale loam
	"Seawater":     35, // Sea water
	"SolidIce":     36, // Solid ice
	"Dry_Soil":     37, // Dry soil
	"LiteSoil":     38, // Light soil
	"RConcrte":     39, // Old runway concrete
	"RoofTile":     40, // Terracota roofing clay tile
	"RedBrick":     41, // Red construction brick
	"Asphalt":      42, // Old runway asphalt
	"TallCorn":     43, // Tall green corn
	"SndGravl":     44, // Sand & gravel
	"Fallow":       45, // Fallow field
	"Birch":        46, // Birch leaves
	"WetSoil":      47, // Wet sandy soil
	"Gravel":       48, // Gravel
	"WetClay2":     49, // Wet red clay
	"WetSilt":      50, // Wet silt
	"LngGrass":     51, // Dry long grass
	"LwnGrass":     52, // Lawn grass (generic bluegrass)
	"OakTree":      53, // Deciduous oak tree leaves
	"Pinion":       54, // Pinion pinetree needles
	"MeltSnow":     55, // Melting snow (slush)
	"Plywood":      56, // Plywood sheet (new, pine, 4-ply)
	"WiteVinl":     57, // White vinyl plastic sheet, 0.15 mm
	"FibrGlss":     58, // Clear fiberglass greenhouse roofing
	"ShtMetal":     59, // Galvanized corrugated sheet metal, new
	"Wetland":      60, // Wetland vegetation canopy, Yellowstone
	"SageBrsh":     61, // Sagebrush canopy, Yellowstone
	"FirTrees":     62, // Fir trees, Colorado
	"CSeaWatr":     63, // Coastal seawater, Pacific
	"OSeaWatr":     64, // Open ocean seawater, Atlantic
	"GrazingField": 65, // Grazing field (unfertilized)
	"Spruce":       66, // Young Norway spruce tree (needles)
}

// ResolveMaterial maps a ground-cover name to its SMARTS albedo code.
// An unrecognized name yields ErrUnknownMaterial naming the offending string.
func ResolveMaterial(name string) (int, error) {
	code, ok := materialCodes[name]
	if !ok {
		return 0, fmt.Errorf("%w: %q (see Materials() for valid names)", ErrUnknownMaterial, name)
	}
	return code, nil
}

// Materials returns all valid ground-cover names, sorted by albedo code.
// No engine invocation and no side effects.
func Materials() []string {
	names := make([]string, 0, len(materialCodes))
	for name := range materialCodes {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		return materialCodes[names[i]] < materialCodes[names[j]]
	})
	return names
}
