package flood

import "testing"

func TestParseScenarios(t *testing.T) {
	scs, err := parseScenarios([]string{"2021_100yr:297.343:LU_2021.indx", "100yr:230"})
	if err != nil {
		t.Fatal(err)
	}
	if len(scs) != 2 {
		t.Fatalf("parsed %d scenarios, want 2", len(scs))
	}
	if scs[0].Name != "2021_100yr" || scs[0].P != 297.343 || scs[0].LuFP != "LU_2021.indx" {
		t.Errorf("scenario 0 parsed as %+v", scs[0])
	}
	if scs[1].Name != "100yr" || scs[1].P != 230. || scs[1].LuFP != "" {
		t.Errorf("scenario 1 parsed as %+v", scs[1])
	}

	for _, bad := range [][]string{
		nil,
		{"nameonly"},
		{"x:notanumber"},
		{"x:-5"},
		{"x:1:2:3:4"},
	} {
		if _, err := parseScenarios(bad); err == nil {
			t.Errorf("parseScenarios(%v): no error", bad)
		}
	}
}

func TestParseRules(t *testing.T) {
	rls, err := parseRules([]string{"1,2,3,4:15", "5:100", "7:30", "8:85"})
	if err != nil {
		t.Fatal(err)
	}
	if len(rls) != 4 {
		t.Fatalf("parsed %d rules, want 4", len(rls))
	}
	if len(rls[0].Codes) != 4 || rls[0].CN != 15. {
		t.Errorf("rule 0 parsed as %+v", rls[0])
	}
	if rls[1].Codes[0] != 5 || rls[1].CN != 100. {
		t.Errorf("rule 1 parsed as %+v", rls[1])
	}

	for _, bad := range [][]string{
		{"1,2"},
		{"1,x:50"},
		{"1:2:3"},
		{"1:cn"},
	} {
		if _, err := parseRules(bad); err == nil {
			t.Errorf("parseRules(%v): no error", bad)
		}
	}
}
