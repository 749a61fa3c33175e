// Copyright 2021 Jonathan Amsterdam.

package clidef

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNewFlag(t *testing.T) {
	for _, test := range []struct {
		def        string
		cfg        *FlagConfig
		wantShorts []string
		wantLongs  []string
		wantName   string
		wantString string
	}{
		{"-f, --force", nil, []string{"f"}, []string{"force"}, "force", "-f, --force"},
		{"-v", nil, []string{"v"}, nil, "v", "-v"},
		{"--dry-run", nil, nil, []string{"dry-run"}, "dryRun", "--dry-run"},
		{"-q|--quiet|--silent  ", nil, []string{"q"}, []string{"quiet", "silent"}, "quiet", "-q, --quiet, --silent"},
		{"-f, --force", &FlagConfig{Name: "yes"}, []string{"f"}, []string{"force"}, "yes", "-f, --force"},
		{"--Output", nil, nil, []string{"Output"}, "Output", "--Output"},
		{"--max-ID", nil, nil, []string{"max-ID"}, "maxID", "--max-ID"},
		{"--out_dir", nil, nil, []string{"out_dir"}, "out_dir", "--out_dir"},
		{"-X", nil, []string{"X"}, nil, "X", "-X"},
	} {
		f, err := NewFlag(test.def, "usage", test.cfg)
		if err != nil {
			t.Errorf("%q: %v", test.def, err)
			continue
		}
		if !cmp.Equal(f.ShortNames(), test.wantShorts) || !cmp.Equal(f.LongNames(), test.wantLongs) {
			t.Errorf("%q: names: got %q %q, want %q %q", test.def, f.ShortNames(), f.LongNames(), test.wantShorts, test.wantLongs)
		}
		if got := f.Name(); got != test.wantName {
			t.Errorf("%q: name: got %q, want %q", test.def, got, test.wantName)
		}
		if got := f.String(); got != test.wantString {
			t.Errorf("%q: string: got %q, want %q", test.def, got, test.wantString)
		}
		if got := f.Usage(); got != "usage" {
			t.Errorf("%q: usage: got %q", test.def, got)
		}
	}
}

func TestNewFlagErrors(t *testing.T) {
	for _, test := range []struct {
		def  string
		want string
	}{
		{"force", "could not find flag name"},
		{"-f <x>", "do not support values"},
		{"-f x", "do not support values"},
		{"--force [x]", "do not support values"},
	} {
		_, err := NewFlag(test.def, "", nil)
		if err == nil || !strings.Contains(err.Error(), test.want) {
			t.Errorf("%q: got %v, want error containing %q", test.def, err, test.want)
			continue
		}
		var perr *ParseError
		if !errors.As(err, &perr) {
			t.Errorf("%q: got %T, want *ParseError", test.def, err)
		} else if perr.Input != test.def {
			t.Errorf("%q: input: got %q", test.def, perr.Input)
		}
	}
}

func TestFlagRejectsAnyTrailingText(t *testing.T) {
	for _, def := range []string{"-f", "--force", "-f, --force", "-f|--force"} {
		for _, suffix := range []string{" x", " <v>", "  [v]", "\tfoo", " =", " -"} {
			if _, err := NewFlag(def+suffix, "", nil); err == nil {
				t.Errorf("%q: got no error", def+suffix)
			}
		}
		for _, suffix := range []string{"", " ", "\t \n"} {
			if _, err := NewFlag(def+suffix, "", nil); err != nil {
				t.Errorf("%q: %v", def+suffix, err)
			}
		}
	}
}

func TestNewOption(t *testing.T) {
	for _, test := range []struct {
		def               string
		cfg               *OptionConfig
		wantShorts        []string
		wantLongs         []string
		wantName          string
		wantValueName     string
		wantValueRequired bool
		wantDefault       Value
		wantString        string
	}{
		{
			def:               "-o, --output <dir>",
			wantShorts:        []string{"o"},
			wantLongs:         []string{"output"},
			wantName:          "output",
			wantValueName:     "dir",
			wantValueRequired: true,
			wantString:        "-o, --output <dir>",
		},
		{
			def:           "-c [when]",
			wantShorts:    []string{"c"},
			wantName:      "c",
			wantValueName: "when",
			wantString:    "-c [when]",
		},
		{
			def:               "--level value",
			wantLongs:         []string{"level"},
			wantName:          "level",
			wantValueName:     "value",
			wantValueRequired: true,
			wantString:        "--level <value>",
		},
		{
			def:               "--out-dir <dir-name>",
			cfg:               &OptionConfig{Default: "build"},
			wantLongs:         []string{"out-dir"},
			wantName:          "outDir",
			wantValueName:     "dir-name",
			wantValueRequired: true,
			wantDefault:       Value{Str: "build"},
			wantString:        "--out-dir <dir-name>",
		},
		{
			def:               "-t|--tag <tag>",
			cfg:               &OptionConfig{Name: "tags", Multi: true, DefaultList: []string{"latest"}},
			wantShorts:        []string{"t"},
			wantLongs:         []string{"tag"},
			wantName:          "tags",
			wantValueName:     "tag",
			wantValueRequired: true,
			wantDefault:       Value{List: []string{"latest"}},
			wantString:        "-t, --tag <tag>",
		},
	} {
		o, err := NewOption(test.def, "", test.cfg)
		if err != nil {
			t.Errorf("%q: %v", test.def, err)
			continue
		}
		if !cmp.Equal(o.ShortNames(), test.wantShorts) || !cmp.Equal(o.LongNames(), test.wantLongs) {
			t.Errorf("%q: names: got %q %q, want %q %q", test.def, o.ShortNames(), o.LongNames(), test.wantShorts, test.wantLongs)
		}
		if got := o.Name(); got != test.wantName {
			t.Errorf("%q: name: got %q, want %q", test.def, got, test.wantName)
		}
		if got := o.ValueName(); got != test.wantValueName {
			t.Errorf("%q: value name: got %q, want %q", test.def, got, test.wantValueName)
		}
		if got := o.ValueRequired(); got != test.wantValueRequired {
			t.Errorf("%q: value required: got %t, want %t", test.def, got, test.wantValueRequired)
		}
		if diff := cmp.Diff(test.wantDefault, o.Default()); diff != "" {
			t.Errorf("%q: default mismatch (-want, +got):\n%s", test.def, diff)
		}
		if got := o.String(); got != test.wantString {
			t.Errorf("%q: string: got %q, want %q", test.def, got, test.wantString)
		}
	}
}

func TestOptionValueRequired(t *testing.T) {
	for _, names := range []string{"-x", "--ex", "-x, --ex", "-x|--ex"} {
		for _, value := range []string{"v", "value", "some-value"} {
			o, err := NewOption(names+" <"+value+">", "", nil)
			if err != nil {
				t.Fatal(err)
			}
			if !o.ValueRequired() {
				t.Errorf("%q: value should be required", names+" <"+value+">")
			}
			o, err = NewOption(names+" ["+value+"]", "", nil)
			if err != nil {
				t.Fatal(err)
			}
			if o.ValueRequired() {
				t.Errorf("%q: value should be optional", names+" ["+value+"]")
			}
		}
	}
}

func TestNewOptionErrors(t *testing.T) {
	for _, test := range []struct {
		def  string
		want string
	}{
		{"-o", "could not find option value name"},
		{"--output  ", "could not find option value name"},
		{"<dir>", "could not find option name"},
		{"output <dir>", "could not find option name"},
	} {
		_, err := NewOption(test.def, "", nil)
		if err == nil || !strings.Contains(err.Error(), test.want) {
			t.Errorf("%q: got %v, want error containing %q", test.def, err, test.want)
		}
	}
}

func TestOptionDefaultIsCopied(t *testing.T) {
	list := []string{"a"}
	o, err := NewOption("-t <tag>", "", &OptionConfig{Multi: true, DefaultList: list})
	if err != nil {
		t.Fatal(err)
	}
	list[0] = "changed"
	d := o.Default()
	d.List[0] = "changed again"
	if got := o.Default().List; !cmp.Equal(got, []string{"a"}) {
		t.Errorf("got %q, want [a]", got)
	}
}
