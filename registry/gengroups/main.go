// Copyright The sysstat Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
)

type metricDef struct {
	Label string    `json:"label"`
	Name  string    `json:"name"`
	PMID  [3]uint32 `json:"pmid"`
	InDom string    `json:"indom"`
	Type  string    `json:"type"`
	Sem   string    `json:"sem"`
	Units [6]any    `json:"units"`
}

type groupDef struct {
	Name     string      `json:"name"`
	Activity string      `json:"activity"`
	Var      string      `json:"var"`
	Doc      string      `json:"doc"`
	Metrics  []metricDef `json:"metrics"`
}

type groupDefs struct {
	Groups []groupDef `json:"groups"`
}

var typeIdents = map[string]string{
	"32":     "pmi.TypeInt32",
	"u32":    "pmi.TypeUint32",
	"64":     "pmi.TypeInt64",
	"u64":    "pmi.TypeUint64",
	"float":  "pmi.TypeFloat",
	"double": "pmi.TypeDouble",
	"string": "pmi.TypeString",
}

var semIdents = map[string]string{
	"counter":  "pmi.SemCounter",
	"instant":  "pmi.SemInstant",
	"discrete": "pmi.SemDiscrete",
}

var scaleIdents = map[string]string{
	"":      "0",
	"byte":  "pmi.SpaceByte",
	"kbyte": "pmi.SpaceKByte",
	"mbyte": "pmi.SpaceMByte",
	"gbyte": "pmi.SpaceGByte",
	"nsec":  "pmi.TimeNSec",
	"usec":  "pmi.TimeUSec",
	"msec":  "pmi.TimeMSec",
	"sec":   "pmi.TimeSec",
	"min":   "pmi.TimeMin",
	"hour":  "pmi.TimeHour",
	"one":   "pmi.CountOne",
}

var indomIdents = map[string]string{
	"cpu":     "CPUInDom",
	"disk":    "DiskInDom",
	"loadavg": "LoadAvgInDom",
	"netdev":  "NetDevInDom",
	"irq":     "IRQInDom",
	"filesys": "FilesysInDom",
	"nfsreq":  "NFSReqInDom",
	"serial":  "SerialInDom",
	"psi":     "PSIInDom",
	"fchost":  "FCHostInDom",
	"irqcpu":  "IRQCPUInDom",
	"fan":     "FanInDom",
	"temp":    "TempInDom",
	"voltage": "VoltageInDom",
	"usb":     "USBInDom",
	"battery": "BatteryInDom",
}

func ident(table map[string]string, key, what string) string {
	id, ok := table[key]
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown %s %q\n", what, key)
		os.Exit(1)
	}
	return id
}

func descExpr(m metricDef) string {
	indom := "pmi.InDomNull"
	if m.InDom != "" {
		indom = ident(indomIdents, m.InDom, "instance domain")
	}
	units := fmt.Sprintf("pmi.MakeUnits(%v, %v, %v, %s, %s, %s)",
		m.Units[0], m.Units[1], m.Units[2],
		ident(scaleIdents, m.Units[3].(string), "space scale"),
		ident(scaleIdents, m.Units[4].(string), "time scale"),
		ident(scaleIdents, m.Units[5].(string), "count scale"))
	return fmt.Sprintf("{Name: %q, ID: pmi.NewID(%d, %d, %d), Type: %s, InDom: %s, Sem: %s, Units: %s},",
		m.Name, m.PMID[0], m.PMID[1], m.PMID[2],
		ident(typeIdents, m.Type, "type"), indom,
		ident(semIdents, m.Sem, "semantics"), units)
}

func main() {
	if len(os.Args) < 3 {
		fmt.Fprintf(os.Stderr, "Usage: %s <groups.json> <output.go>\n", os.Args[0])
		os.Exit(1)
	}

	input, err := os.ReadFile(os.Args[1])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading %s: %v", os.Args[1], err)
		os.Exit(1)
	}

	var defs groupDefs
	if err = json.Unmarshal(input, &defs); err != nil {
		fmt.Fprintf(os.Stderr, "Error unmarshaling: %v", err)
		os.Exit(1)
	}

	var output bytes.Buffer
	output.WriteString(
		"// Code generated from groups.json. DO NOT EDIT.\n" +
			"\n" +
			"package registry\n" +
			"\n" +
			"import \"github.com/sysstat/sapcp/pmi\"\n" +
			"\n" +
			"// To change a metric identity edit groups.json and run\n" +
			"// 'go generate ./registry'. Index constants are positional within\n" +
			"// their group: only append to a group's metric list.\n" +
			"\n" +
			"// Activity identifies one metric group.\n" +
			"type Activity int32\n" +
			"\n" +
			"const (\n")

	for i, g := range defs.Groups {
		fmt.Fprintf(&output, "\t// %s\n", g.Doc)
		if i == 0 {
			fmt.Fprintf(&output, "\t%s Activity = iota\n\n", g.Activity)
		} else {
			fmt.Fprintf(&output, "\t%s\n\n", g.Activity)
		}
	}

	output.WriteString(
		"\t// number of activities, keep this as *last entry*\n" +
			"\tnumActivities\n" +
			")\n" +
			"\n" +
			"// activityNames holds the external name of each activity, in\n" +
			"// Activity order.\n" +
			"var activityNames = [numActivities]string{\n")
	for _, g := range defs.Groups {
		fmt.Fprintf(&output, "\t%q,\n", g.Name)
	}
	output.WriteString("}\n")

	for _, g := range defs.Groups {
		fmt.Fprintf(&output, "\n// Indexes of the %s group metrics.\nconst (\n", g.Name)
		for i, m := range g.Metrics {
			if i == 0 {
				fmt.Fprintf(&output, "\t%s = iota\n", m.Label)
			} else {
				fmt.Fprintf(&output, "\t%s\n", m.Label)
			}
		}
		output.WriteString(")\n")
		fmt.Fprintf(&output, "\n// %sDescs lists the %s group metrics in index order.\nvar %sDescs = []pmi.Desc{\n",
			g.Var, g.Name, g.Var)
		for _, m := range g.Metrics {
			fmt.Fprintf(&output, "\t%s\n", descExpr(m))
		}
		output.WriteString("}\n")
	}

	output.WriteString(
		"\n// groupTable holds each activity group and its metric table, in\n" +
			"// Activity order.\n" +
			"var groupTable = [numActivities]groupSpec{\n")
	for _, g := range defs.Groups {
		fmt.Fprintf(&output, "\t{name: %q, descs: %sDescs},\n", g.Name, g.Var)
	}
	output.WriteString("}\n")

	if err = os.WriteFile(os.Args[2], output.Bytes(), 0o600); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v", err)
		os.Exit(1)
	}
}
