// Package smarts drives SMARTS 2.9.5 (Simple Model of the Atmospheric
// Radiative Transfer of Sunshine, NREL): it encodes a card deck into
// smarts295.inp.txt, runs the engine as a subprocess and decodes the
// spectral result table from smarts295.ext.txt.
//
// The engine itself is an external, licensed executable and must be obtained
// from NREL; its installation directory is given by Settings.Dir or the
// SMARTSPATH environment variable.
package smarts

// Output-variable codes (Card 12c) of general interest. The full list of
// codes 1..43 is in the SMARTS documentation.
const (
	OutExtraterrestrial = 1  // extraterrestrial spectrum W m-2
	OutDirectNormal     = 2  // direct normal irradiance W m-2
	OutDiffuse          = 3  // diffuse horizontal irradiance W m-2
	OutGlobalHorizontal = 4  // global horizontal irradiance W m-2
	OutGlobalTilted     = 8  // global tilted irradiance W m-2
	OutZonalAlbedo      = 30 // zonal surface reflectance
	OutLocalAlbedo      = 31 // local ground reflectance
)

// comment written on Card 1 of every preset deck.
const defaultComment = "ASTMG173-03 (AM1.5 Standard)"

func defaultStr(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

// Spectra computes a standard spectrum for a date, time and location.
//
// Args:
//
//	out: output-variable codes for Card 12c, e.g. []int{2, 3} for direct
//	     normal and diffuse horizontal irradiance
//	year, month, day, hour: local standard time (hour in 24-hour format)
//	latit, longit: location in decimal degrees (e.g. "32.", "-110.92")
//	altit: ground elevation above sea level (km)
//	zone: time zone (hours from UT)
//
// Returns:
//
//	the spectral table (wavelength in nm plus one column per code), or an
//	error from the taxonomy in errors.go.
//
// The deck follows the AM1.5 preset: sea-level-corrected site pressure,
// U.S. Standard Atmosphere, default water vapor and ozone, pristine gas
// load, Shettle & Fenn tropospheric aerosol with zero turbidity, light-soil
// albedo and a latitude-tilted receiving surface.
func Spectra(out []int, year, month, day, hour, latit, longit, altit, zone string, settings *Settings) (*Spectrum, error) {
	cfg := &Config{
		Comment: defaultComment,
		Site: Site{
			PressureMode: 1,
			Pressure:     "1013.25",
			Altitude:     altit,
			Height:       "0",
		},
		Atmosphere: Atmosphere{Mode: 1, Reference: "USSA"},
		WaterVapor: WaterVapor{Mode: 1},
		Ozone:      Ozone{Mode: 1},
		Gas:        Gas{Mode: 0, Load: 1},
		CO2:        CO2{Abundance: "0", Spectrum: 0},
		Aerosol:    Aerosol{Model: "S&F_TROPO"},
		Turbidity:  Turbidity{Mode: 0, Tau500: "0.00"},
		Albedo: Albedo{
			Zonal:    38, // LiteSoil
			TiltMode: 1,
			Local:    38,
			Tilt:     latit,
			Azimuth:  "180.",
		},
		Spectral: Spectral{
			Min:           "280",
			Max:           "4000",
			SunCorrection: "1.0",
			SolarConstant: "1367.0",
		},
		Output: Output{
			Print:    2,
			Min:      "280",
			Max:      "4000",
			Interval: ".5",
			Codes:    out,
		},
		SolarPosition: SolarPosition{
			Mode:      3,
			Year:      year,
			Month:     month,
			Day:       day,
			Hour:      hour,
			Latitude:  latit,
			Longitude: longit,
			Zone:      zone,
		},
	}
	return Run(cfg, settings)
}

// AlbedoSpectra computes the spectral albedo of a ground-cover material
// (output code 30, zonal surface reflectance).
//
// Args:
//
//	material: a name from Materials(), e.g. "Gravel"
//	wlmn, wlmx, intvl: output wavelength range and step in nm
//	                   (defaults 280, 4000, 0.5)
//	pos: solar position; the zero value means zenith 0, azimuth 180
//
// Returns:
//
//	a two-column table (wavelength, albedo), or an error.
func AlbedoSpectra(material string, wlmn, wlmx, intvl string, pos SolarPosition, settings *Settings) (*Spectrum, error) {
	code, err := ResolveMaterial(material)
	if err != nil {
		return nil, err
	}

	wlmn = defaultStr(wlmn, "280")
	wlmx = defaultStr(wlmx, "4000")
	intvl = defaultStr(intvl, "0.5")
	if pos.Mode == 0 {
		pos.Zenith = defaultStr(pos.Zenith, "0")
		pos.Azimuth = defaultStr(pos.Azimuth, "180.")
	}

	cfg := &Config{
		Comment: defaultComment,
		Site: Site{
			PressureMode: 1,
			Pressure:     "1013.25",
			Altitude:     "0.",
			Height:       "0",
		},
		Atmosphere: Atmosphere{Mode: 1, Reference: "USSA"},
		WaterVapor: WaterVapor{Mode: 1},
		Ozone:      Ozone{Mode: 1},
		Gas:        Gas{Mode: 0, Load: 1},
		CO2:        CO2{Abundance: "0", Spectrum: 0},
		Aerosol:    Aerosol{Model: "S&F_TROPO"},
		Turbidity:  Turbidity{Mode: 0, Tau500: "0.00"},
		Albedo:     Albedo{Zonal: code, TiltMode: 0},
		Spectral: Spectral{
			Min:           wlmn,
			Max:           wlmx,
			SunCorrection: "1.0",
			SolarConstant: "1367.0",
		},
		Output: Output{
			Print:    2,
			Min:      wlmn,
			Max:      wlmx,
			Interval: intvl,
			Codes:    []int{OutZonalAlbedo},
		},
		SolarPosition: pos,
	}
	return Run(cfg, settings)
}

// SiteObservation holds measured conditions from a weather station, for
// spectra under a realistic (non-reference) atmosphere.
type SiteObservation struct {
	Pressure  string // surface pressure (mb)
	AirTemp   string // air temperature at site level (C)
	RelHumid  string // relative humidity (%)
	Season    string // WINTER or SUMMER
	DailyTemp string // average daily temperature (C)

	// PrecipWater is the measured precipitable water (cm). Empty means it is
	// derived from AirTemp and RelHumid by the engine.
	PrecipWater string

	// Ozone is the measured total-column ozone (atm-cm), altitude corrected
	// by the engine. Empty selects the default abundance.
	Ozone string

	// Aerosol model; empty means S&F_RURAL. AOD550 is the measured aerosol
	// optical depth at 550 nm.
	Aerosol string
	AOD550  string

	// Broadband measured ground albedo, 0..1.
	Albedo string

	// Optional receiver geometry; both empty disables tilt calculations.
	Tilt        string // tilt angle (deg), -999 tracks the sun
	TiltAzimuth string // surface azimuth (deg)

	// Date, time and location for solar position (Card 17a, IMASS = 3).
	Year, Month, Day, Hour string
	Latitude, Longitude    string
	Altitude               string // ground elevation (km)
	Zone                   string // time zone (hours from UT)
}

// SiteSpectra computes spectra for measured weather-station conditions: a
// realistic atmosphere from the observed temperature and humidity, measured
// pressure, precipitable water, aerosol optical depth and broadband albedo.
func SiteSpectra(obs SiteObservation, out []int, settings *Settings) (*Spectrum, error) {
	cfg := &Config{
		Comment:    defaultComment,
		Site:       Site{PressureMode: 0, Pressure: obs.Pressure},
		Atmosphere: Atmosphere{Mode: 0, AirTemp: obs.AirTemp, RelHumid: obs.RelHumid, Season: obs.Season, DailyTemp: obs.DailyTemp},
		Gas:        Gas{Mode: 0, Load: 1},
		CO2:        CO2{Abundance: "370.0", Spectrum: 0},
		Aerosol:    Aerosol{Model: defaultStr(obs.Aerosol, "S&F_RURAL")},
		Turbidity:  Turbidity{Mode: 5, Tau550: obs.AOD550},
		Albedo:     Albedo{Zonal: -1, ZonalBroadband: obs.Albedo},
		Spectral: Spectral{
			Min:           "280",
			Max:           "4000",
			SunCorrection: "1.0",
			SolarConstant: "1367.0",
		},
		Output: Output{
			Print:    2,
			Min:      "280",
			Max:      "4000",
			Interval: ".5",
			Codes:    out,
		},
		SolarPosition: SolarPosition{
			Mode:      3,
			Year:      obs.Year,
			Month:     obs.Month,
			Day:       obs.Day,
			Hour:      obs.Hour,
			Latitude:  obs.Latitude,
			Longitude: obs.Longitude,
			Zone:      obs.Zone,
		},
	}

	if obs.PrecipWater != "" {
		cfg.WaterVapor = WaterVapor{Mode: 0, Precipitable: obs.PrecipWater}
	} else {
		cfg.WaterVapor = WaterVapor{Mode: 2}
	}

	if obs.Ozone != "" {
		cfg.Ozone = Ozone{Mode: 0, AltCorrection: "1", Abundance: obs.Ozone}
	} else {
		cfg.Ozone = Ozone{Mode: 1}
	}

	if obs.Tilt != "" || obs.TiltAzimuth != "" {
		cfg.Albedo.TiltMode = 1
		cfg.Albedo.Local = -1
		cfg.Albedo.LocalBroadband = obs.Albedo
		cfg.Albedo.Tilt = obs.Tilt
		cfg.Albedo.Azimuth = obs.TiltAzimuth
	}

	return Run(cfg, settings)
}
