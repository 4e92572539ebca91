package config

import (
	"fmt"
	"os"

	"github.com/terrenohq/asistencia-backend-go/internal/domain/policy"
	"gopkg.in/yaml.v3"
)

// policyFile mirrors the YAML document: a defaults record plus per-site
// overrides. Every field is optional; omitted fields fall through to the
// level below (site -> defaults -> compiled-in constants).
type policyFile struct {
	Defaults policyRecord            `yaml:"defaults"`
	Sites    map[string]policyRecord `yaml:"sites"`
}

type policyRecord struct {
	Policy         *string  `yaml:"policy"`
	MorningStart   *string  `yaml:"morning_start"`
	MorningEnd     *string  `yaml:"morning_end"`
	AfternoonStart *string  `yaml:"afternoon_start"`
	AfternoonEnd   *string  `yaml:"afternoon_end"`
	EveningCutoff  *string  `yaml:"evening_cutoff"`
	WeeklyCapHours *float64 `yaml:"weekly_cap_hours"`
	NightStart     *string  `yaml:"night_start"`
	NightEnd       *string  `yaml:"night_end"`
	UTCOffsetHours *int     `yaml:"utc_offset_hours"`
}

// LoadPolicies reads the per-site labor policy file. A missing file is not
// an error: every site then runs on the compiled-in defaults.
func LoadPolicies(path string) (policy.Set, error) {
	set := policy.Set{
		Default: policy.Default(),
		Sites:   make(map[string]policy.Policy),
	}
	if path == "" {
		return set, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return set, nil
		}
		return policy.Set{}, fmt.Errorf("failed to read policy file: %w", err)
	}

	var file policyFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return policy.Set{}, fmt.Errorf("failed to parse policy file: %w", err)
	}

	base, err := applyPolicyRecord(set.Default, file.Defaults)
	if err != nil {
		return policy.Set{}, fmt.Errorf("policy defaults: %w", err)
	}
	set.Default = base

	for siteID, record := range file.Sites {
		p, err := applyPolicyRecord(base, record)
		if err != nil {
			return policy.Set{}, fmt.Errorf("policy for site %s: %w", siteID, err)
		}
		set.Sites[siteID] = p
	}

	return set, nil
}

func applyPolicyRecord(base policy.Policy, record policyRecord) (policy.Policy, error) {
	out := base

	if record.Policy != nil {
		kind := policy.Kind(*record.Policy)
		if kind != policy.KindDailyBlock && kind != policy.KindWeeklyCap {
			return policy.Policy{}, fmt.Errorf("unknown policy kind %q", *record.Policy)
		}
		out.Kind = kind
	}
	if record.UTCOffsetHours != nil {
		if *record.UTCOffsetHours < -12 || *record.UTCOffsetHours > 14 {
			return policy.Policy{}, fmt.Errorf("utc_offset_hours %d out of range", *record.UTCOffsetHours)
		}
		out.UTCOffsetHours = *record.UTCOffsetHours
	}
	if record.WeeklyCapHours != nil {
		if *record.WeeklyCapHours <= 0 {
			return policy.Policy{}, fmt.Errorf("weekly_cap_hours must be positive")
		}
		out.WeeklyCap.CapHours = *record.WeeklyCapHours
	}

	clockFields := []struct {
		value *string
		dst   *policy.ClockTime
		name  string
	}{
		{record.MorningStart, &out.DailyBlock.MorningStart, "morning_start"},
		{record.MorningEnd, &out.DailyBlock.MorningEnd, "morning_end"},
		{record.AfternoonStart, &out.DailyBlock.AfternoonStart, "afternoon_start"},
		{record.AfternoonEnd, &out.DailyBlock.AfternoonEnd, "afternoon_end"},
		{record.EveningCutoff, &out.DailyBlock.EveningCutoff, "evening_cutoff"},
		{record.NightStart, &out.WeeklyCap.NightStart, "night_start"},
		{record.NightEnd, &out.WeeklyCap.NightEnd, "night_end"},
	}
	for _, f := range clockFields {
		if f.value == nil {
			continue
		}
		ct, err := policy.ParseClockTime(*f.value)
		if err != nil {
			return policy.Policy{}, fmt.Errorf("%s: %w", f.name, err)
		}
		*f.dst = ct
	}

	return out, nil
}
