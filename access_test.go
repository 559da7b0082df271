package trailcost

import (
	"testing"
)

func TestGetAccess(t *testing.T) {
	hiking := NewAccessDecider(HikingProfile(CALIBRATION_STANDARD), false)
	foot := NewAccessDecider(FootProfile(), false)
	noFords := NewAccessDecider(HikingProfile(CALIBRATION_STANDARD), true)
	type testCase struct {
		name     string
		decider  AccessDecider
		kv       []string
		expected AccessDecision
	}
	cases := []testCase{
		{"path", hiking, []string{"highway", "path"}, ACCESS_WAY},
		{"no highway", hiking, []string{"building", "yes"}, ACCESS_CAN_SKIP},
		{"ferry", hiking, []string{"route", "ferry"}, ACCESS_FERRY},
		{"ferry for foot", hiking, []string{"route", "ferry", "foot", "yes"}, ACCESS_FERRY},
		{"ferry without foot", hiking, []string{"route", "ferry", "foot", "no"}, ACCESS_CAN_SKIP},
		{"platform", hiking, []string{"railway", "platform"}, ACCESS_WAY},
		{"pier", hiking, []string{"man_made", "pier"}, ACCESS_WAY},
		{"motorway", hiking, []string{"highway", "motorway"}, ACCESS_CAN_SKIP},
		{"motorway with foot", hiking, []string{"highway", "motorway", "foot", "permissive"}, ACCESS_WAY},
		{"private", hiking, []string{"highway", "track", "access", "private"}, ACCESS_CAN_SKIP},
		{"foot no", hiking, []string{"highway", "footway", "foot", "no"}, ACCESS_CAN_SKIP},
		{"sidewalk", hiking, []string{"highway", "motorway_link", "sidewalk", "right"}, ACCESS_WAY},
		{"motorroad", hiking, []string{"highway", "primary", "motorroad", "yes"}, ACCESS_CAN_SKIP},
		{"alpine for hiking", hiking, []string{"highway", "path", "sac_scale", SAC_DIFFICULT_ALPINE_HIKING}, ACCESS_WAY},
		{"alpine for foot", foot, []string{"highway", "path", "sac_scale", SAC_DIFFICULT_ALPINE_HIKING}, ACCESS_CAN_SKIP},
		{"unknown sac_scale", hiking, []string{"highway", "path", "sac_scale", "climbing"}, ACCESS_CAN_SKIP},
		{"ford allowed", hiking, []string{"highway", "path", "ford", "yes"}, ACCESS_WAY},
		{"ford blocked", noFords, []string{"highway", "path", "ford", "stepping_stones"}, ACCESS_CAN_SKIP},
		{"ford tag is no", noFords, []string{"highway", "path", "ford", "no"}, ACCESS_WAY},
		{"ford with foot", noFords, []string{"highway", "path", "ford", "yes", "foot", "designated"}, ACCESS_WAY},
	}
	for _, tc := range cases {
		decision := tc.decider.GetAccess(tagsOf(tc.kv...))
		if decision != tc.expected {
			t.Errorf("Access for case '%s' must be %s, but got %s", tc.name, tc.expected, decision)
		}
	}
}

func TestAccessDecisionString(t *testing.T) {
	correct := map[AccessDecision]string{
		ACCESS_CAN_SKIP: "can_skip",
		ACCESS_WAY:      "way",
		ACCESS_FERRY:    "ferry",
	}
	for decision, name := range correct {
		if decision.String() != name {
			t.Errorf("Name must be '%s', but got '%s'", name, decision.String())
		}
	}
}

func TestGetHighwayType(t *testing.T) {
	for str, highway := range highwaysTypes {
		if highway.String() != str {
			t.Errorf("Name of %d must be '%s', but got '%s'", highway, str, highway.String())
		}
		if getHighwayType(str) != highway {
			t.Errorf("Type of '%s' must be %d, but got %d", str, highway, getHighwayType(str))
		}
	}
	if getHighwayType("bridleway") != HIGHWAY_UNDEFINED {
		t.Errorf("Unknown highway must be undefined")
	}
}
