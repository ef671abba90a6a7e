package smarts

import (
	"fmt"
	"strings"
)

// Config collects every input card of the SMARTS 2.9.5 deck, grouped by card.
// Numeric fields are carried as strings so that the caller controls the exact
// text written to the engine (SMARTS is sensitive to formatting, e.g. a
// latitude of "32."); option codes are ints with closed domains checked by
// Validate.
//
// Which fields are required depends on the option codes: a field that the
// active options do not select is ignored by the encoder and may be left
// empty.
type Config struct {
	Comment string // Card 1, capped at 62 chars, spaces become underscores

	Site          Site          // Cards 2/2a
	Atmosphere    Atmosphere    // Cards 3/3a
	WaterVapor    WaterVapor    // Cards 4/4a
	Ozone         Ozone         // Cards 5/5a
	Gas           Gas           // Cards 6/6a/6b
	CO2           CO2           // Cards 7/7a
	Aerosol       Aerosol       // Cards 8/8a
	Turbidity     Turbidity     // Cards 9/9a
	Albedo        Albedo        // Cards 10/10a/10b/10c/10d
	Spectral      Spectral      // Card 11
	Output        Output        // Cards 12/12a/12b/12c
	Circumsolar   Circumsolar   // Cards 13/13a
	Scan          Scan          // Cards 14/14a
	Illuminance   int           // Card 15, ILLUM
	UV            int           // Card 16, IUV
	SolarPosition SolarPosition // Cards 17/17a
}

// Site pressure input (Card 2). PressureMode is ISPR:
//
//	0: Pressure only
//	1: Pressure, Altitude, Height
//	2: Latitude, Altitude, Height
type Site struct {
	PressureMode int    // ISPR
	Pressure     string // SPR, surface pressure (mb)
	Altitude     string // ALTIT, ground elevation above sea level (km)
	Height       string // HEIGHT, height above the ground surface (km)
	Latitude     string // LATIT, site latitude (decimal degrees)
}

// Atmosphere selection (Card 3). Mode is IATMOS:
//
//	0: realistic atmosphere from AirTemp, RelHumid, Season, DailyTemp
//	1: reference atmosphere named by Reference
type Atmosphere struct {
	Mode      int    // IATMOS
	Reference string // ATMOS, one of USSA MLS MLW SAS SAW TRL STS STW AS AW
	AirTemp   string // TAIR, air temperature at site level (C)
	RelHumid  string // RH, relative humidity at site level (%)
	Season    string // SEASON, WINTER or SUMMER
	DailyTemp string // TDAY, average daily temperature (C)
}

// Water vapor (Card 4). Mode is IH2O: 0 reads Precipitable on Card 4a,
// 1 defaults from the reference atmosphere, 2 derives from TAIR and RH.
type WaterVapor struct {
	Mode         int    // IH2O
	Precipitable string // W, precipitable water (cm)
}

// Ozone abundance (Card 5). Mode is IO3: 0 reads AltCorrection and Abundance
// on Card 5a, 1 defaults from the reference atmosphere.
type Ozone struct {
	Mode          int    // IO3
	AltCorrection string // IALT, altitude correction option
	Abundance     string // AbO3, ozone abundance (atm-cm)
}

// Gaseous absorption and pollution (Card 6). Mode is IGAS: 0 reads Load on
// Card 6a, 1 defaults all gas abundances. Load is ILOAD: 0 reads the ten
// pollutant concentrations on Card 6b, 1 pristine, 2..4 light/moderate/severe
// pollution.
type Gas struct {
	Mode int // IGAS
	Load int // ILOAD

	// Card 6b, volumetric concentrations in the 1-km tropospheric pollution
	// layer (ppmv).
	CH2O string // ApCH2O
	CH4  string // ApCH4
	CO   string // ApCO
	HNO2 string // ApHNO2
	HNO3 string // ApHNO3
	NO   string // ApNO
	NO2  string // ApNO2
	NO3  string // ApNO3
	O3   string // ApO3
	SO2  string // ApSO2
}

// CO2 abundance and extraterrestrial spectrum (Cards 7/7a).
type CO2 struct {
	Abundance string // qCO2, columnar volumetric concentration (ppmv)
	Spectrum  int    // ISPCTR, -1..8, selects Spctrm_n.dat
}

// Aerosol model (Card 8). Model "USER" requires the four broadband optical
// properties on Card 8a.
type Aerosol struct {
	Model     string // AEROS
	Alpha1    string // ALPHA1, Angstrom exponent below 500 nm
	Alpha2    string // ALPHA2, Angstrom exponent at and above 500 nm
	OmegaL    string // OMEGL, single scattering albedo
	Asymmetry string // GG, asymmetry parameter
}

// Turbidity (Card 9). Mode is ITURB and selects which single value is read on
// Card 9a.
type Turbidity struct {
	Mode       int    // ITURB
	Tau500     string // TAU5, if ITURB = 0
	Beta       string // BETA, if ITURB = 1
	BChuep     string // BCHUEP, if ITURB = 2
	Range      string // RANGE, if ITURB = 3
	Visibility string // VISI, if ITURB = 4
	Tau550     string // TAU550, if ITURB = 5
}

// Albedo selection and tilt geometry (Cards 10/10a/10b/10c/10d). Zonal is
// IALBDX (-1 fixed broadband value from ZonalBroadband, 0..66 material code);
// TiltMode is ITILT; Local is IALBDG with the same convention as Zonal.
type Albedo struct {
	Zonal          int    // IALBDX
	ZonalBroadband string // RHOX, if IALBDX = -1
	TiltMode       int    // ITILT
	Local          int    // IALBDG, if ITILT = 1
	Tilt           string // TILT, tilt angle (deg), -999 tracks the sun
	Azimuth        string // WAZIM, surface azimuth (deg)
	LocalBroadband string // RHOG, if IALBDG = -1
}

// Spectral range for all calculations (Card 11).
type Spectral struct {
	Min           string // WLMN (nm)
	Max           string // WLMX (nm)
	SunCorrection string // SUNCOR, Sun-Earth distance correction
	SolarConstant string // SOLARC (W/m2)
}

// Result printing (Cards 12/12a/12b/12c). Print is IPRT: 0 broadband only,
// 1 spectral to File 16, 2 spreadsheet File 17, 3 both. Codes are the IOUT
// output-variable codes (1..43); the IOTOT count card is derived from their
// number and never supplied by the caller.
type Output struct {
	Print    int    // IPRT
	Min      string // WPMN (nm)
	Max      string // WPMX (nm)
	Interval string // INTVL (nm)
	Codes    []int  // IOUT
}

// Circumsolar radiometry (Cards 13/13a).
type Circumsolar struct {
	Mode     int    // ICIRC
	Slope    string // SLOPE
	Aperture string // APERT
	Limit    string // LIMIT
}

// Scanning/smoothing postprocessor filter (Cards 14/14a).
type Scan struct {
	Mode   int    // ISCAN
	Filter string // IFILT
	Min    string // WV1
	Max    string // WV2
	Step   string // STEP
	FWHM   string // FWHM
}

// Solar position and air mass (Card 17). Mode is IMASS:
//
//	0: Zenith, Azimuth
//	1: Elevation, Azimuth
//	2: AirMass
//	3: Year, Month, Day, Hour, Latitude, Longitude, Zone
//	4: Month, Latitude, DailyStep (daily calculation)
type SolarPosition struct {
	Mode      int    // IMASS
	Zenith    string // ZENIT (deg)
	Azimuth   string // AZIM (deg)
	Elevation string // ELEV (deg)
	AirMass   string // AMASS
	Year      string // YEAR
	Month     string // MONTH
	Day       string // DAY
	Hour      string // HOUR, 24-hour local standard time
	Latitude  string // LATIT (decimal degrees)
	Longitude string // LONGIT (decimal degrees)
	Zone      string // ZONE, time zone (hours from UT)
	DailyStep string // DSTEP (min)
}

// Reference atmosphere names accepted on Card 3a.
var referenceAtmospheres = map[string]bool{
	"USSA": true, "MLS": true, "MLW": true, "SAS": true, "SAW": true,
	"TRL": true, "STS": true, "STW": true, "AS": true, "AW": true,
}

// Aerosol models accepted on Card 8.
var aerosolModels = map[string]bool{
	"S&F_RURAL": true, "S&F_URBAN": true, "S&F_MARIT": true, "S&F_TROPO": true,
	"SRA_CONTL": true, "SRA_URBAN": true, "SRA_MARIT": true,
	"B&D_C": true, "B&D_C1": true,
	"DESERT_MIN": true, "DESERT_MAX": true,
	"USER": true,
}

func cardErr(card string, format string, a ...interface{}) error {
	return fmt.Errorf("%w: card %s: %s", ErrInvalidConfig, card, fmt.Sprintf(format, a...))
}

func requireFields(card string, fields map[string]string) error {
	for name, v := range fields {
		if strings.TrimSpace(v) == "" {
			return cardErr(card, "%s is required by the selected option", name)
		}
	}
	return nil
}

// Validate checks every option code against its enumerated domain and every
// option-dependent subfield for presence. It touches no files; Encode and Run
// refuse to write anything for an invalid configuration.
func (c *Config) Validate() error {
	// Card 2
	switch c.Site.PressureMode {
	case 0:
		if err := requireFields("2a", map[string]string{"SPR": c.Site.Pressure}); err != nil {
			return err
		}
	case 1:
		if err := requireFields("2a", map[string]string{
			"SPR": c.Site.Pressure, "ALTIT": c.Site.Altitude, "HEIGHT": c.Site.Height,
		}); err != nil {
			return err
		}
	case 2:
		if err := requireFields("2a", map[string]string{
			"LATIT": c.Site.Latitude, "ALTIT": c.Site.Altitude, "HEIGHT": c.Site.Height,
		}); err != nil {
			return err
		}
	default:
		return cardErr("2", "ISPR must be 0, 1 or 2, got %d", c.Site.PressureMode)
	}

	// Card 3
	switch c.Atmosphere.Mode {
	case 0:
		if err := requireFields("3a", map[string]string{
			"TAIR": c.Atmosphere.AirTemp, "RH": c.Atmosphere.RelHumid,
			"SEASON": c.Atmosphere.Season, "TDAY": c.Atmosphere.DailyTemp,
		}); err != nil {
			return err
		}
		if s := c.Atmosphere.Season; s != "WINTER" && s != "SUMMER" {
			return cardErr("3a", "SEASON must be WINTER or SUMMER, got %q", s)
		}
	case 1:
		if !referenceAtmospheres[c.Atmosphere.Reference] {
			return cardErr("3a", "unknown reference atmosphere %q", c.Atmosphere.Reference)
		}
	default:
		return cardErr("3", "IATMOS must be 0 or 1, got %d", c.Atmosphere.Mode)
	}

	// Card 4
	switch c.WaterVapor.Mode {
	case 0:
		if err := requireFields("4a", map[string]string{"W": c.WaterVapor.Precipitable}); err != nil {
			return err
		}
	case 1, 2:
	default:
		return cardErr("4", "IH2O must be 0, 1 or 2, got %d", c.WaterVapor.Mode)
	}

	// Card 5
	switch c.Ozone.Mode {
	case 0:
		if err := requireFields("5a", map[string]string{
			"IALT": c.Ozone.AltCorrection, "AbO3": c.Ozone.Abundance,
		}); err != nil {
			return err
		}
	case 1:
	default:
		return cardErr("5", "IO3 must be 0 or 1, got %d", c.Ozone.Mode)
	}

	// Card 6
	switch c.Gas.Mode {
	case 0:
		if c.Gas.Load < 0 || c.Gas.Load > 4 {
			return cardErr("6a", "ILOAD must be 0..4, got %d", c.Gas.Load)
		}
		if c.Gas.Load == 0 {
			if err := requireFields("6b", map[string]string{
				"ApCH2O": c.Gas.CH2O, "ApCH4": c.Gas.CH4, "ApCO": c.Gas.CO,
				"ApHNO2": c.Gas.HNO2, "ApHNO3": c.Gas.HNO3, "ApNO": c.Gas.NO,
				"ApNO2": c.Gas.NO2, "ApNO3": c.Gas.NO3, "ApO3": c.Gas.O3,
				"ApSO2": c.Gas.SO2,
			}); err != nil {
				return err
			}
		}
	case 1:
	default:
		return cardErr("6", "IGAS must be 0 or 1, got %d", c.Gas.Mode)
	}

	// Card 7/7a
	if err := requireFields("7", map[string]string{"qCO2": c.CO2.Abundance}); err != nil {
		return err
	}
	if c.CO2.Spectrum < -1 || c.CO2.Spectrum > 8 {
		return cardErr("7a", "ISPCTR must be -1..8, got %d", c.CO2.Spectrum)
	}

	// Card 8
	if !aerosolModels[c.Aerosol.Model] {
		return cardErr("8", "unknown aerosol model %q", c.Aerosol.Model)
	}
	if c.Aerosol.Model == "USER" {
		if err := requireFields("8a", map[string]string{
			"ALPHA1": c.Aerosol.Alpha1, "ALPHA2": c.Aerosol.Alpha2,
			"OMEGL": c.Aerosol.OmegaL, "GG": c.Aerosol.Asymmetry,
		}); err != nil {
			return err
		}
	}

	// Card 9
	turbFields := []struct{ name, value string }{
		{"TAU5", c.Turbidity.Tau500},
		{"BETA", c.Turbidity.Beta},
		{"BCHUEP", c.Turbidity.BChuep},
		{"RANGE", c.Turbidity.Range},
		{"VISI", c.Turbidity.Visibility},
		{"TAU550", c.Turbidity.Tau550},
	}
	if c.Turbidity.Mode < 0 || c.Turbidity.Mode >= len(turbFields) {
		return cardErr("9", "ITURB must be 0..5, got %d", c.Turbidity.Mode)
	}
	tf := turbFields[c.Turbidity.Mode]
	if err := requireFields("9a", map[string]string{tf.name: tf.value}); err != nil {
		return err
	}

	// Card 10
	if c.Albedo.Zonal < -1 || c.Albedo.Zonal > 66 {
		return cardErr("10", "IALBDX must be -1..66, got %d", c.Albedo.Zonal)
	}
	if c.Albedo.Zonal == -1 {
		if err := requireFields("10a", map[string]string{"RHOX": c.Albedo.ZonalBroadband}); err != nil {
			return err
		}
	}
	switch c.Albedo.TiltMode {
	case 0:
	case 1:
		if c.Albedo.Local < -1 || c.Albedo.Local > 66 {
			return cardErr("10c", "IALBDG must be -1..66, got %d", c.Albedo.Local)
		}
		if err := requireFields("10c", map[string]string{
			"TILT": c.Albedo.Tilt, "WAZIM": c.Albedo.Azimuth,
		}); err != nil {
			return err
		}
		if c.Albedo.Local == -1 {
			if err := requireFields("10d", map[string]string{"RHOG": c.Albedo.LocalBroadband}); err != nil {
				return err
			}
		}
	default:
		return cardErr("10b", "ITILT must be 0 or 1, got %d", c.Albedo.TiltMode)
	}

	// Card 11
	if err := requireFields("11", map[string]string{
		"WLMN": c.Spectral.Min, "WLMX": c.Spectral.Max,
		"SUNCOR": c.Spectral.SunCorrection, "SOLARC": c.Spectral.SolarConstant,
	}); err != nil {
		return err
	}

	// Card 12
	if c.Output.Print < 0 || c.Output.Print > 3 {
		return cardErr("12", "IPRT must be 0..3, got %d", c.Output.Print)
	}
	if c.Output.Print >= 1 {
		if err := requireFields("12a", map[string]string{
			"WPMN": c.Output.Min, "WPMX": c.Output.Max, "INTVL": c.Output.Interval,
		}); err != nil {
			return err
		}
	}
	if c.Output.Print >= 2 {
		if len(c.Output.Codes) == 0 {
			return cardErr("12c", "at least one IOUT output code is required")
		}
		for _, code := range c.Output.Codes {
			if code < 1 || code > 43 {
				return cardErr("12c", "IOUT codes must be 1..43, got %d", code)
			}
		}
	}

	// Card 13
	switch c.Circumsolar.Mode {
	case 0:
	case 1:
		if err := requireFields("13a", map[string]string{
			"SLOPE": c.Circumsolar.Slope, "APERT": c.Circumsolar.Aperture,
			"LIMIT": c.Circumsolar.Limit,
		}); err != nil {
			return err
		}
	default:
		return cardErr("13", "ICIRC must be 0 or 1, got %d", c.Circumsolar.Mode)
	}

	// Card 14
	switch c.Scan.Mode {
	case 0:
	case 1:
		if err := requireFields("14a", map[string]string{
			"IFILT": c.Scan.Filter, "WV1": c.Scan.Min, "WV2": c.Scan.Max,
			"STEP": c.Scan.Step, "FWHM": c.Scan.FWHM,
		}); err != nil {
			return err
		}
	default:
		return cardErr("14", "ISCAN must be 0 or 1, got %d", c.Scan.Mode)
	}

	// Card 15
	switch c.Illuminance {
	case -2, -1, 0, 1, 2:
	default:
		return cardErr("15", "ILLUM must be -2, -1, 0, 1 or 2, got %d", c.Illuminance)
	}

	// Card 16
	if c.UV != 0 && c.UV != 1 {
		return cardErr("16", "IUV must be 0 or 1, got %d", c.UV)
	}

	// Card 17
	switch c.SolarPosition.Mode {
	case 0:
		if err := requireFields("17a", map[string]string{
			"ZENIT": c.SolarPosition.Zenith, "AZIM": c.SolarPosition.Azimuth,
		}); err != nil {
			return err
		}
	case 1:
		if err := requireFields("17a", map[string]string{
			"ELEV": c.SolarPosition.Elevation, "AZIM": c.SolarPosition.Azimuth,
		}); err != nil {
			return err
		}
	case 2:
		if err := requireFields("17a", map[string]string{"AMASS": c.SolarPosition.AirMass}); err != nil {
			return err
		}
	case 3:
		if err := requireFields("17a", map[string]string{
			"YEAR": c.SolarPosition.Year, "MONTH": c.SolarPosition.Month,
			"DAY": c.SolarPosition.Day, "HOUR": c.SolarPosition.Hour,
			"LATIT": c.SolarPosition.Latitude, "LONGIT": c.SolarPosition.Longitude,
			"ZONE": c.SolarPosition.Zone,
		}); err != nil {
			return err
		}
	case 4:
		if err := requireFields("17a", map[string]string{
			"MONTH": c.SolarPosition.Month, "LATIT": c.SolarPosition.Latitude,
			"DSTEP": c.SolarPosition.DailyStep,
		}); err != nil {
			return err
		}
	default:
		return cardErr("17", "IMASS must be 0..4, got %d", c.SolarPosition.Mode)
	}

	return nil
}
