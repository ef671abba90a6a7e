package smarts

import (
	"bytes"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

// Returns a deck that exercises the documented default branch of every card:
// pressure from altitude, U.S. Standard Atmosphere, default water vapor,
// ozone and gas load, zero CO2, tropospheric aerosol with zero turbidity,
// Gravel zonal albedo, no tilt, full spectral range at 0.5 nm, zonal albedo
// output, date-driven solar position.
func gravelConfig() *Config {
	return &Config{
		Comment:    "ASTMG173-03 (AM1.5 Standard)",
		Site:       Site{PressureMode: 1, Pressure: "1013.25", Altitude: "0.805", Height: "0"},
		Atmosphere: Atmosphere{Mode: 1, Reference: "USSA"},
		WaterVapor: WaterVapor{Mode: 1},
		Ozone:      Ozone{Mode: 1},
		Gas:        Gas{Mode: 0, Load: 1},
		CO2:        CO2{Abundance: "0", Spectrum: 0},
		Aerosol:    Aerosol{Model: "S&F_TROPO"},
		Turbidity:  Turbidity{Mode: 0, Tau500: "0.00"},
		Albedo:     Albedo{Zonal: 48, TiltMode: 0},
		Spectral:   Spectral{Min: "280", Max: "4000", SunCorrection: "1.0", SolarConstant: "1367.0"},
		Output:     Output{Print: 2, Min: "280", Max: "4000", Interval: "0.5", Codes: []int{30}},
		SolarPosition: SolarPosition{
			Mode: 3,
			Year: "2001", Month: "6", Day: "21", Hour: "12",
			Latitude: "32.", Longitude: "-110.92", Zone: "-7",
		},
	}
}

// Full-deck encoding of the Gravel scenario: every card line in order, the
// albedo card holding the literal material code, the solar-position card
// holding the seven date/time/location fields space separated.
func Test_Encode_Gravel(t *testing.T) {
	var buf bytes.Buffer
	err := gravelConfig().Encode(&buf)
	assert.NoError(t, err)

	expected := strings.Join([]string{
		"'ASTMG173-03_(AM1.5_Standard)'",
		"1",
		"1013.25 0.805 0",
		"1",
		"'USSA'",
		"1",
		"1",
		"0",
		"1",
		"0",
		"0",
		"'S&F_TROPO'",
		"0",
		"0.00",
		"48",
		"0",
		"280 4000 1.0 1367.0",
		"2",
		"280 4000 0.5",
		"1",
		"30",
		"0",
		"0",
		"0",
		"0",
		"3",
		"2001 6 21 12 32. -110.92 -7",
		"",
	}, "\n") + "\n"

	assert.Equal(t, expected, buf.String())
}

// Every remaining option branch of the card grammar: each case mutates one
// option group, and the deck must contain the exact sub-card line for that
// option value and exactly the expected number of lines (sub-cards appear
// only when selected, never blank-padded).
func Test_Encode_OptionBranches(t *testing.T) {
	var base bytes.Buffer
	assert.NoError(t, gravelConfig().Encode(&base))
	baseLines := strings.Count(base.String(), "\n")

	cases := []struct {
		name   string
		mutate func(cfg *Config)
		want   string // exact card lines in order, embedded in the deck
		delta  int    // line count relative to the base deck
	}{
		{
			name:   "ISPR=0 pressure only",
			mutate: func(cfg *Config) { cfg.Site = Site{PressureMode: 0, Pressure: "840.0"} },
			want:   "\n0\n840.0\n1\n'USSA'\n",
			delta:  0,
		},
		{
			name: "ISPR=2 latitude altitude height",
			mutate: func(cfg *Config) {
				cfg.Site = Site{PressureMode: 2, Latitude: "32.", Altitude: "0.805", Height: "0"}
			},
			want:  "\n2\n32. 0.805 0\n1\n'USSA'\n",
			delta: 0,
		},
		{
			name: "IATMOS=0 realistic atmosphere",
			mutate: func(cfg *Config) {
				cfg.Atmosphere = Atmosphere{Mode: 0, AirTemp: "25.5", RelHumid: "40.0", Season: "SUMMER", DailyTemp: "22.0"}
			},
			want:  "\n0\n25.5 40.0 SUMMER 22.0\n",
			delta: 0,
		},
		{
			name:   "IH2O=0 measured precipitable water",
			mutate: func(cfg *Config) { cfg.WaterVapor = WaterVapor{Mode: 0, Precipitable: "1.42"} },
			want:   "\n0\n1.42\n",
			delta:  1,
		},
		{
			name:   "IO3=0 measured ozone",
			mutate: func(cfg *Config) { cfg.Ozone = Ozone{Mode: 0, AltCorrection: "1", Abundance: "0.342"} },
			want:   "\n0\n1 0.342\n",
			delta:  1,
		},
		{
			name:   "IGAS=1 default gas profiles",
			mutate: func(cfg *Config) { cfg.Gas = Gas{Mode: 1} },
			want:   "\n1\n1\n0\n0\n'S&F_TROPO'\n",
			delta:  -1, // no Card 6a
		},
		{
			name:   "ILOAD=3 moderate pollution",
			mutate: func(cfg *Config) { cfg.Gas = Gas{Mode: 0, Load: 3} },
			want:   "\n0\n3\n0\n0\n'S&F_TROPO'\n",
			delta:  0,
		},
		{
			name:   "ITURB=1 Angstrom beta",
			mutate: func(cfg *Config) { cfg.Turbidity = Turbidity{Mode: 1, Beta: "0.117"} },
			want:   "'S&F_TROPO'\n1\n0.117\n48\n",
			delta:  0,
		},
		{
			name:   "ITURB=2 Schuepp coefficient",
			mutate: func(cfg *Config) { cfg.Turbidity = Turbidity{Mode: 2, BChuep: "0.15"} },
			want:   "'S&F_TROPO'\n2\n0.15\n48\n",
			delta:  0,
		},
		{
			name:   "ITURB=3 meteorological range",
			mutate: func(cfg *Config) { cfg.Turbidity = Turbidity{Mode: 3, Range: "25.0"} },
			want:   "'S&F_TROPO'\n3\n25.0\n48\n",
			delta:  0,
		},
		{
			name:   "ITURB=4 visibility",
			mutate: func(cfg *Config) { cfg.Turbidity = Turbidity{Mode: 4, Visibility: "40.0"} },
			want:   "'S&F_TROPO'\n4\n40.0\n48\n",
			delta:  0,
		},
		{
			name:   "ITURB=5 AOD at 550nm",
			mutate: func(cfg *Config) { cfg.Turbidity = Turbidity{Mode: 5, Tau550: "0.084"} },
			want:   "'S&F_TROPO'\n5\n0.084\n48\n",
			delta:  0,
		},
		{
			name: "ICIRC=1 radiometer geometry",
			mutate: func(cfg *Config) {
				cfg.Circumsolar = Circumsolar{Mode: 1, Slope: "2.9", Aperture: "5.8", Limit: "0"}
			},
			want:  "\n1\n2.9 5.8 0\n0\n",
			delta: 1,
		},
		{
			name: "ISCAN=1 smoothing filter",
			mutate: func(cfg *Config) {
				cfg.Scan = Scan{Mode: 1, Filter: "1", Min: "300", Max: "400", Step: "0.5", FWHM: "2"}
			},
			want:  "\n1\n1 300 400 0.5 2\n0\n0\n3\n",
			delta: 1,
		},
		{
			name: "IMASS=0 zenith and azimuth",
			mutate: func(cfg *Config) {
				cfg.SolarPosition = SolarPosition{Mode: 0, Zenith: "48.2", Azimuth: "180."}
			},
			want:  "\n0\n48.2 180.\n",
			delta: 0,
		},
		{
			name: "IMASS=1 elevation and azimuth",
			mutate: func(cfg *Config) {
				cfg.SolarPosition = SolarPosition{Mode: 1, Elevation: "41.8", Azimuth: "180."}
			},
			want:  "\n1\n41.8 180.\n",
			delta: 0,
		},
		{
			name:   "IMASS=2 air mass",
			mutate: func(cfg *Config) { cfg.SolarPosition = SolarPosition{Mode: 2, AirMass: "1.5"} },
			want:   "\n2\n1.5\n",
			delta:  0,
		},
		{
			// The daily-calculation card is the only comma-separated one.
			name: "IMASS=4 daily calculation",
			mutate: func(cfg *Config) {
				cfg.SolarPosition = SolarPosition{Mode: 4, Month: "6", Latitude: "32.", DailyStep: "30"}
			},
			want:  "\n4\n6, 32., 30\n",
			delta: 0,
		},
	}

	for _, c := range cases {
		cfg := gravelConfig()
		c.mutate(cfg)

		var buf bytes.Buffer
		assert.NoError(t, cfg.Encode(&buf), c.name)
		assert.Contains(t, buf.String(), c.want, c.name)
		assert.Equal(t, baseLines+c.delta, strings.Count(buf.String(), "\n"), c.name)
	}
}

// The USER aerosol model demands the Card 8a sub-card; any named model omits
// it entirely.
func Test_Encode_UserAerosol(t *testing.T) {
	cfg := gravelConfig()
	cfg.Aerosol = Aerosol{Model: "USER", Alpha1: "1.3", Alpha2: "1.3", OmegaL: "0.92", Asymmetry: "0.65"}

	var buf bytes.Buffer
	assert.NoError(t, cfg.Encode(&buf))
	assert.Contains(t, buf.String(), "'USER'\n1.3 1.3 0.92 0.65\n")

	var base bytes.Buffer
	assert.NoError(t, gravelConfig().Encode(&base))
	assert.Equal(t, len(strings.Split(base.String(), "\n"))+1, len(strings.Split(buf.String(), "\n")))
}

// IALBDX = -1 demands the fixed broadband value on Card 10a.
func Test_Encode_FixedBroadbandAlbedo(t *testing.T) {
	cfg := gravelConfig()
	cfg.Albedo = Albedo{Zonal: -1, ZonalBroadband: "0.25", TiltMode: 0}

	var buf bytes.Buffer
	assert.NoError(t, cfg.Encode(&buf))
	assert.Contains(t, buf.String(), "\n-1\n0.25\n0\n")
}

// Tilt calculations emit Cards 10c (and 10d for a fixed local albedo).
func Test_Encode_Tilt(t *testing.T) {
	cfg := gravelConfig()
	cfg.Albedo = Albedo{Zonal: 48, TiltMode: 1, Local: 48, Tilt: "32.", Azimuth: "180."}

	var buf bytes.Buffer
	assert.NoError(t, cfg.Encode(&buf))
	assert.Contains(t, buf.String(), "\n48\n1\n48 32. 180.\n")

	cfg.Albedo.Local = -1
	cfg.Albedo.LocalBroadband = "0.2"
	buf.Reset()
	assert.NoError(t, cfg.Encode(&buf))
	assert.Contains(t, buf.String(), "\n48\n1\n-1 32. 180.\n0.2\n")
}

// The comment is capped at 62 characters, spaces become underscores and the
// result is quoted.
func Test_Encode_CommentNormalization(t *testing.T) {
	cfg := gravelConfig()
	cfg.Comment = strings.Repeat("a b", 40) // 120 chars

	var buf bytes.Buffer
	assert.NoError(t, cfg.Encode(&buf))

	first := strings.SplitN(buf.String(), "\n", 2)[0]
	assert.True(t, strings.HasPrefix(first, "'"))
	assert.True(t, strings.HasSuffix(first, "'"))
	assert.Equal(t, 61+2, len(first))
	assert.NotContains(t, first, " ")
}

// Truncating an over-long comment must not cut through a multi-byte rune;
// the engine would choke on a mangled Card 1.
func Test_Encode_CommentTruncationMultibyte(t *testing.T) {
	cfg := gravelConfig()
	cfg.Comment = strings.Repeat("é", 70)

	var buf bytes.Buffer
	assert.NoError(t, cfg.Encode(&buf))

	first := strings.SplitN(buf.String(), "\n", 2)[0]
	assert.True(t, utf8.ValidString(first))
	assert.Equal(t, 61+2, utf8.RuneCountInString(first))
	assert.Equal(t, "'"+strings.Repeat("é", 61)+"'", first)
}

// The pollutant concentrations of Card 6b appear only for IGAS = 0 and
// ILOAD = 0.
func Test_Encode_Pollutants(t *testing.T) {
	cfg := gravelConfig()
	cfg.Gas = Gas{
		Mode: 0, Load: 0,
		CH2O: "0.001", CH4: "0.2", CO: "0.1", HNO2: "0.0001", HNO3: "0.001",
		NO: "0.05", NO2: "0.02", NO3: "0.00005", O3: "0.03", SO2: "0.01",
	}

	var buf bytes.Buffer
	assert.NoError(t, cfg.Encode(&buf))
	assert.Contains(t, buf.String(),
		"\n0\n0\n0.001 0.2 0.1 0.0001 0.001 0.05 0.02 0.00005 0.03 0.01\n")
}

// An out-of-domain option code is rejected before anything is encoded.
func Test_Validate_BadPressureMode(t *testing.T) {
	cfg := gravelConfig()
	cfg.Site.PressureMode = 5

	var buf bytes.Buffer
	err := cfg.Encode(&buf)
	assert.ErrorIs(t, err, ErrInvalidConfig)
	assert.Contains(t, err.Error(), "ISPR")
	assert.Zero(t, buf.Len())
}

// A subfield required by the chosen option code must be present.
func Test_Validate_MissingRequiredSubfield(t *testing.T) {
	cfg := gravelConfig()
	cfg.WaterVapor = WaterVapor{Mode: 0} // W missing

	err := cfg.Validate()
	assert.ErrorIs(t, err, ErrInvalidConfig)
	assert.Contains(t, err.Error(), "W is required")
}

func Test_Validate_UnknownAtmosphere(t *testing.T) {
	cfg := gravelConfig()
	cfg.Atmosphere.Reference = "XXXX"
	assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
}

func Test_Validate_UnknownAerosolModel(t *testing.T) {
	cfg := gravelConfig()
	cfg.Aerosol.Model = "S&F_BOGUS"
	assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
}

func Test_Validate_BadOutputCode(t *testing.T) {
	cfg := gravelConfig()
	cfg.Output.Codes = []int{30, 44}
	assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)

	cfg.Output.Codes = nil
	assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
}

func Test_Validate_TiltRequiresGeometry(t *testing.T) {
	cfg := gravelConfig()
	cfg.Albedo = Albedo{Zonal: 48, TiltMode: 1, Local: 48} // TILT, WAZIM missing
	assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
}

func Test_Validate_RealisticAtmosphereSeason(t *testing.T) {
	cfg := gravelConfig()
	cfg.Atmosphere = Atmosphere{Mode: 0, AirTemp: "25.0", RelHumid: "40.0", Season: "SPRING", DailyTemp: "22.0"}
	err := cfg.Validate()
	assert.ErrorIs(t, err, ErrInvalidConfig)
	assert.Contains(t, err.Error(), "SEASON")
}

func Test_Validate_BadSolarPositionMode(t *testing.T) {
	cfg := gravelConfig()
	cfg.SolarPosition.Mode = 7
	assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
}
