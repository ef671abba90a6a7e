// smarts-go command line interface
package main

import (
	"bytes"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/akamensky/argparse"
	"github.com/sayala/smarts-go/smarts"
)

func main() {
	log.SetFlags(log.Lmicroseconds)

	parser := argparse.NewParser("smarts-go", "Computes solar spectra and spectral albedos with the SMARTS 2.9.5 engine")

	lat := parser.StringPositional(&argparse.Options{
		Default: "32.",
		Help:    "Site latitude (decimal degrees)"})

	lon := parser.StringPositional(&argparse.Options{
		Default: "-110.92",
		Help:    "Site longitude (decimal degrees)"})

	filename := parser.String("o", "output", &argparse.Options{
		Default: "",
		Help:    "Output file path (CSV); stdout when empty"})

	material := parser.String("m", "material", &argparse.Options{
		Default: "",
		Help:    "Ground-cover material: compute its spectral albedo instead of irradiance spectra"})

	listMaterials := parser.Flag("", "list_materials", &argparse.Options{
		Help: "List all valid ground-cover materials and exit"})

	outCodes := parser.String("", "out_codes", &argparse.Options{
		Default: "2 3",
		Help:    "Space-separated output-variable codes for Card 12c (1..43)"})

	year := parser.String("", "year", &argparse.Options{Default: "2001", Help: "Year"})
	month := parser.String("", "month", &argparse.Options{Default: "6", Help: "Month"})
	day := parser.String("", "day", &argparse.Options{Default: "21", Help: "Day"})
	hour := parser.String("", "hour", &argparse.Options{Default: "12", Help: "Hour (24-hour local standard time)"})
	zone := parser.String("", "zone", &argparse.Options{Default: "-7", Help: "Time zone (hours from UT)"})
	altit := parser.String("", "altit", &argparse.Options{Default: "0", Help: "Ground elevation above sea level (km)"})

	useDatetime := parser.Flag("", "use_datetime", &argparse.Options{
		Help: "Drive the albedo solar position from date/time instead of zenith/azimuth"})
	zenith := parser.String("", "zenith", &argparse.Options{Default: "0", Help: "Solar zenith angle (deg, albedo mode)"})
	azim := parser.String("", "azim", &argparse.Options{Default: "180.", Help: "Solar azimuth (deg, albedo mode)"})

	wlmn := parser.String("", "wlmn", &argparse.Options{Default: "280", Help: "Minimum wavelength (nm)"})
	wlmx := parser.String("", "wlmx", &argparse.Options{Default: "4000", Help: "Maximum wavelength (nm)"})
	intvl := parser.String("", "interval", &argparse.Options{Default: "0.5", Help: "Output wavelength step (nm)"})

	smartsDir := parser.String("", "smarts_dir", &argparse.Options{
		Default: "",
		Help:    "SMARTS installation directory (default: $SMARTSPATH)"})

	settingsFile := parser.String("", "settings", &argparse.Options{
		Default: "",
		Help:    "YAML settings file (dir, executable, timeout_seconds)"})

	timeout := parser.Int("", "timeout", &argparse.Options{
		Default: 0,
		Help:    "Engine timeout in seconds (0 = default)"})

	err := parser.Parse(os.Args)
	if err != nil {
		fmt.Print(parser.Usage(err))
		os.Exit(2)
	}

	if *listMaterials {
		for _, name := range smarts.Materials() {
			fmt.Println(name)
		}
		return
	}

	settings := &smarts.Settings{}
	if *settingsFile != "" {
		settings, err = smarts.LoadSettings(*settingsFile)
		if err != nil {
			log.Fatal(err)
		}
	}
	if *smartsDir != "" {
		settings.Dir = *smartsDir
	}
	if *timeout > 0 {
		settings.TimeoutSeconds = *timeout
	}

	var sp *smarts.Spectrum
	if *material != "" {
		pos := smarts.SolarPosition{Mode: 0, Zenith: *zenith, Azimuth: *azim}
		if *useDatetime {
			pos = smarts.SolarPosition{
				Mode:      3,
				Year:      *year,
				Month:     *month,
				Day:       *day,
				Hour:      *hour,
				Latitude:  *lat,
				Longitude: *lon,
				Zone:      *zone,
			}
		}
		sp, err = smarts.AlbedoSpectra(*material, *wlmn, *wlmx, *intvl, pos, settings)
	} else {
		codes, cerr := parseCodes(*outCodes)
		if cerr != nil {
			log.Fatal(cerr)
		}
		sp, err = smarts.Spectra(codes, *year, *month, *day, *hour, *lat, *lon, *altit, *zone, settings)
	}
	if err != nil {
		log.Fatal(err)
	}

	var buf *bytes.Buffer = bytes.NewBuffer([]byte{})
	sp.ToCSV(buf)

	if *filename == "" {
		fmt.Print(buf.String())
	} else {
		log.Printf("saving CSV: %s", *filename)
		if err := os.WriteFile(*filename, buf.Bytes(), os.ModePerm); err != nil {
			log.Fatal(err)
		}
	}

	log.Printf("done (%d rows)", sp.Rows())
}

func parseCodes(s string) ([]int, error) {
	var codes []int
	for _, field := range strings.Fields(s) {
		code, err := strconv.Atoi(field)
		if err != nil {
			return nil, fmt.Errorf("invalid output code %q", field)
		}
		codes = append(codes, code)
	}
	return codes, nil
}
