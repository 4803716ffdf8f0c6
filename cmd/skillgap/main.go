package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"github.com/sourabh020820033/learning-path/adapters/cli"
	"github.com/sourabh020820033/learning-path/adapters/persistence"
	analysisUC "github.com/sourabh020820033/learning-path/internal/application/usecase/analysis"
	"github.com/sourabh020820033/learning-path/internal/domain/analysis"
	"github.com/sourabh020820033/learning-path/internal/domain/catalog"
	"github.com/sourabh020820033/learning-path/pkg/logger"
)

func main() {
	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: skillgap [options]\n\n")
		fmt.Fprintf(os.Stderr, "skillgap compares your skills with the requirements of your target roles\n")
		fmt.Fprintf(os.Stderr, "and prints a gap analysis with a three-phase learning path.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		pflag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  skillgap -g \"Software Engineer\" -s React:50:90:high -t 3-months\n")
		fmt.Fprintf(os.Stderr, "  skillgap -g \"Data Scientist\" -s python:60 -s SQL:40 -t 6-months --json\n")
		fmt.Fprintf(os.Stderr, "  skillgap -c roles.yaml -g \"SRE\" -s Kubernetes:30 -t flexible\n")
		fmt.Fprintf(os.Stderr, "  skillgap --roles          # List recognised roles\n")
	}

	goalsFlag := pflag.StringArrayP("goal", "g", nil, "Career goal or target role (repeatable)")
	skillsFlag := pflag.StringArrayP("skill", "s", nil, "Skill as name:current[:target[:priority]] (repeatable)")
	timeframeFlag := pflag.StringP("timeframe", "t", "", "Learning timeframe: 1-month, 3-months, 6-months, 1-year, flexible")
	catalogFlag := pflag.StringP("catalog", "c", "", "Load role requirements from a YAML catalog file")
	jsonFlag := pflag.BoolP("json", "j", false, "Output raw analysis data as JSON")
	rolesFlag := pflag.BoolP("roles", "r", false, "List the roles of the catalog and exit")
	helpFlag := pflag.BoolP("help", "h", false, "Show this help message")
	pflag.Parse()

	if *helpFlag {
		pflag.Usage()
		return
	}

	ctx := context.Background()
	log := logger.NewNopLogger()

	var source catalog.Source = catalog.Builtin{}
	if *catalogFlag != "" {
		source = persistence.NewFileCatalogSource(*catalogFlag, log)
	}
	cat, err := source.Load(ctx)
	if err != nil {
		fail(err)
	}

	if *rolesFlag {
		for _, r := range cat.Roles() {
			fmt.Println(r)
		}
		return
	}

	skills := make([]analysis.UserSkill, 0, len(*skillsFlag))
	for _, s := range *skillsFlag {
		skill, err := cli.ParseSkill(s)
		if err != nil {
			fail(err)
		}
		skills = append(skills, skill)
	}

	uc := analysisUC.NewAnalyzeUseCase(analysis.NewAnalyzer(cat), nil, nil, log)
	out, err := uc.Execute(ctx, analysisUC.AnalyzeInput{
		Goals:     *goalsFlag,
		Skills:    skills,
		Timeframe: *timeframeFlag,
	})
	if err != nil {
		fail(err)
	}

	if *jsonFlag {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(struct {
			Result    analysis.Result    `json:"result"`
			Dashboard analysis.Dashboard `json:"dashboard"`
		}{out.Result, out.Dashboard}); err != nil {
			fail(err)
		}
		return
	}

	cli.RenderReport(os.Stdout, out.Result, out.Dashboard)
}

func fail(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}
