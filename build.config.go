package flood

import (
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/evanpanlabs-design/Beijing-Urban-Flood-Sim-2025Dec18/scscn"
	"github.com/maseology/mmio"
)

// LoadConfig reads a control file of the form
//
//	gdeffp dem.gdef
//	demfp dem.bil
//	swsfp sws.indx
//	cnfp cn.bil
//	outdir out/
//	scenarios 2021_100yr:297.343:LU_2021.indx 2031_100yr:313.994:LU_2031.indx
//	cnrules 1,2,3,4:15 5:100 7:30 8:85
//	cndefault 50
//
// A scenario with no land-use raster falls back to the base CN raster
// (cnfp). The loaded Config is immutable by convention.
func LoadConfig(fp string) *Config {
	ins := mmio.NewInstruct(fp)
	get := func(k string) string {
		if v, ok := ins.Param[k]; ok && len(v) > 0 {
			return v[0]
		}
		return ""
	}

	cfg := Config{
		GdefFP: get("gdeffp"),
		DemFP:  get("demfp"),
		SwsFP:  get("swsfp"),
		CnFP:   get("cnfp"),
		OutDir: get("outdir"),
	}
	if cfg.GdefFP == "" || cfg.DemFP == "" || cfg.SwsFP == "" {
		log.Fatalf(" LoadConfig %s: gdeffp, demfp and swsfp are required", fp)
	}
	if cfg.OutDir == "" {
		cfg.OutDir = mmio.GetFileDir(fp) + "/output/"
	}

	scs, err := parseScenarios(ins.Param["scenarios"])
	if err != nil {
		log.Fatalf(" LoadConfig %s: %v", fp, err)
	}
	cfg.Scenarios = scs

	rls, err := parseRules(ins.Param["cnrules"])
	if err != nil {
		log.Fatalf(" LoadConfig %s: %v", fp, err)
	}
	cfg.Rules = scscn.Rules{Rules: rls, Default: 50.}
	if s := get("cndefault"); s != "" {
		d, err := strconv.ParseFloat(s, 64)
		if err != nil {
			log.Fatalf(" LoadConfig %s: cndefault: %v", fp, err)
		}
		cfg.Rules.Default = d
	}

	for _, sc := range cfg.Scenarios {
		if sc.LuFP == "" && cfg.CnFP == "" {
			log.Fatalf(" LoadConfig %s: scenario %s needs a land-use raster or a base cnfp", fp, sc.Name)
		}
	}
	return &cfg
}

// parseScenarios interprets name:P[:lufp] tokens.
func parseScenarios(toks []string) ([]Scenario, error) {
	if len(toks) == 0 {
		return nil, fmt.Errorf("no scenarios given")
	}
	out := make([]Scenario, 0, len(toks))
	for _, t := range toks {
		a := strings.Split(t, ":")
		if len(a) < 2 || len(a) > 3 {
			return nil, fmt.Errorf("malformed scenario %q (want name:P[:lufp])", t)
		}
		p, err := strconv.ParseFloat(a[1], 64)
		if err != nil || p < 0. {
			return nil, fmt.Errorf("malformed scenario %q: bad storm depth", t)
		}
		sc := Scenario{Name: a[0], P: p}
		if len(a) == 3 {
			sc.LuFP = a[2]
		}
		out = append(out, sc)
	}
	return out, nil
}

// parseRules interprets code,code,..:cn tokens, in order.
func parseRules(toks []string) ([]scscn.Rule, error) {
	out := make([]scscn.Rule, 0, len(toks))
	for _, t := range toks {
		a := strings.Split(t, ":")
		if len(a) != 2 {
			return nil, fmt.Errorf("malformed cnrule %q (want codes:cn)", t)
		}
		cn, err := strconv.ParseFloat(a[1], 64)
		if err != nil {
			return nil, fmt.Errorf("malformed cnrule %q: bad curve number", t)
		}
		var codes []int
		for _, cs := range strings.Split(a[0], ",") {
			c, err := strconv.Atoi(cs)
			if err != nil {
				return nil, fmt.Errorf("malformed cnrule %q: bad code %q", t, cs)
			}
			codes = append(codes, c)
		}
		out = append(out, scscn.Rule{Codes: codes, CN: cn})
	}
	return out, nil
}
