package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// versionOutput represents JSON output for version
type versionOutput struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	Branch    string `json:"branch"`
	BuildTime string `json:"build_time"`
	GoVersion string `json:"go_version"`
}

// versionsYAML represents the versions.yaml file structure
type versionsYAML struct {
	Project struct {
		Name    string `yaml:"name"`
		Version string `yaml:"version"`
	} `yaml:"project"`
	Git struct {
		Commit string `yaml:"commit"`
		Branch string `yaml:"branch"`
	} `yaml:"git"`
	Build struct {
		Time      string `yaml:"time"`
		GoVersion string `yaml:"go_version"`
	} `yaml:"build"`
}

// versionSearchPaths are checked in order for versions.yaml
var versionSearchPaths = []string{
	VersionsFileName,
	filepath.Join("..", VersionsFileName),
	filepath.Join("..", "..", VersionsFileName),
}

func (a *app) versionCommand() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   CmdNameVersion,
		Short: "Show version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if format != OutputFormatText && format != OutputFormatJSON {
				return usageError(ErrMsgInvalidFormat, format)
			}

			v := getVersionInfo(versionSearchPaths)
			if format == OutputFormatJSON {
				return outputVersionJSON(v, a.stdout)
			}
			fmt.Fprintf(a.stdout, VersionTextTemplate+FmtNewline,
				v.Version, v.Commit, v.Branch, v.BuildTime, v.GoVersion)
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, FlagFormat, FlagFormatShort, FlagDefaultFormat, "output format: text, json")
	return cmd
}

// getVersionInfo reads the first parseable versions.yaml among paths
func getVersionInfo(paths []string) versionOutput {
	v := versionOutput{
		Version:   VersionUnknown,
		Commit:    VersionUnknown,
		Branch:    VersionUnknown,
		BuildTime: VersionUnknown,
		GoVersion: runtime.Version(),
	}

	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}

		var vy versionsYAML
		if err := yaml.Unmarshal(data, &vy); err != nil {
			continue
		}

		if vy.Project.Version != "" {
			v.Version = vy.Project.Version
		}
		if vy.Git.Commit != "" {
			v.Commit = vy.Git.Commit
		}
		if vy.Git.Branch != "" {
			v.Branch = vy.Git.Branch
		}
		if vy.Build.Time != "" {
			v.BuildTime = vy.Build.Time
		}
		if vy.Build.GoVersion != "" {
			v.GoVersion = vy.Build.GoVersion
		}
		break
	}

	return v
}

func outputVersionJSON(v versionOutput, stdout io.Writer) error {
	jsonBytes, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return runError(ErrMsgWriteOutputFailed, err)
	}
	fmt.Fprintln(stdout, string(jsonBytes))
	return nil
}
