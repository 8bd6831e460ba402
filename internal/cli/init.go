package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/nightwatch-labs/create-nightwatch/internal/branding"
	"github.com/nightwatch-labs/create-nightwatch/internal/config"
	"github.com/nightwatch-labs/create-nightwatch/internal/console"
	"github.com/nightwatch-labs/create-nightwatch/internal/download"
	"github.com/nightwatch-labs/create-nightwatch/internal/plan"
	"github.com/nightwatch-labs/create-nightwatch/internal/project"
	"github.com/nightwatch-labs/create-nightwatch/internal/scaffold"
	"github.com/nightwatch-labs/create-nightwatch/internal/treecopy"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var (
	initYes         bool
	initPlan        string
	initTemplates   string
	initExclude     []string
	initOverwrite   bool
	initDownloads   []string
	initDownloadDir string
	initNoProgress  bool
)

// npmRunner initialises package.json; tests swap it out.
var npmRunner project.Runner = &project.ExecRunner{}

func init() {
	f := rootCmd.Flags()
	f.BoolVarP(&initYes, "yes", "y", false, "Skip the confirmation prompt")
	f.StringVar(&initPlan, "plan", "", "Scaffold plan file (YAML) describing what to copy and download")
	f.StringVar(&initTemplates, "templates", "", "Template directory to copy into the project (default from config)")
	f.StringSliceVar(&initExclude, "exclude", nil, "Directory suffixes to skip while copying (default from config)")
	f.BoolVar(&initOverwrite, "overwrite", false, "Overwrite files that already exist in the project")
	f.StringArrayVar(&initDownloads, "download", nil, "URL of an asset to download (repeatable)")
	f.StringVar(&initDownloadDir, "download-dir", "bin", "Directory under root-dir that receives downloads")
	f.BoolVar(&initNoProgress, "no-progress", false, "Do not draw download progress bars")
}

func runInit(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	stderr := cmd.ErrOrStderr()

	known, unknown := splitArgs(cmd.Flags(), args)
	if err := cmd.Flags().Parse(known); err != nil {
		return err
	}
	if help, _ := cmd.Flags().GetBool("help"); help {
		return cmd.Help()
	}
	positional := cmd.Flags().Args()
	if err := cobra.MaximumNArgs(1)(cmd, positional); err != nil {
		return err
	}

	fmt.Fprintln(stderr, branding.Title())

	root, err := resolveRoot(positional)
	if err != nil {
		return err
	}

	options := append(setOptions(cmd), unknown...)

	created, err := project.EnsureManifest(ctx, root, npmRunner, stderr)
	if err != nil {
		return err
	}
	if created {
		options = append(options, scaffold.OptionNewProject)
	}

	p, err := buildPlan(root)
	if err != nil {
		return err
	}
	if p.Empty() {
		fmt.Fprintf(stderr, "Nothing to scaffold. Pass --templates, --download or --plan, or set %q with '%s config set'.\n",
			config.KeyTemplates, branding.CLIName())
		return nil
	}

	if !initYes {
		ok, err := confirm(cmd.InOrStdin(), stderr, root, p)
		if err != nil {
			return err
		}
		if !ok {
			fmt.Fprintln(stderr, "Aborted.")
			return nil
		}
	}

	runner := scaffold.New(treecopy.New(nil), newDownloader(stderr), stderr)
	req := &scaffold.Request{
		Root:    root,
		Plan:    p,
		Version: buildVersion,
		Mirror:  config.Get(config.KeyMirror),
		Options: options,
	}
	report, err := runner.Run(ctx, req)
	if err != nil {
		return err
	}

	printSummary(cmd.OutOrStdout(), report, req)
	return nil
}

// resolveRoot turns the optional root-dir argument into an absolute path.
func resolveRoot(args []string) (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("getting current directory: %w", err)
	}
	if len(args) == 0 {
		return cwd, nil
	}
	if filepath.IsAbs(args[0]) {
		return filepath.Clean(args[0]), nil
	}
	return filepath.Join(cwd, args[0]), nil
}

// setOptions lists the known flags given on the command line by name.
func setOptions(cmd *cobra.Command) []string {
	var opts []string
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if f.Changed {
			opts = append(opts, f.Name)
		}
	})
	return opts
}

// buildPlan loads --plan, or assembles a plan from flags and config.
func buildPlan(root string) (*plan.Plan, error) {
	if initPlan != "" {
		return plan.Load(initPlan)
	}

	p := &plan.Plan{}

	templates := initTemplates
	if templates == "" {
		templates = config.Get(config.KeyTemplates)
	}
	if templates != "" {
		abs, err := filepath.Abs(templates)
		if err != nil {
			return nil, fmt.Errorf("resolving template directory: %w", err)
		}
		var exclude []string
		for _, e := range initExclude {
			if e = strings.TrimSpace(e); e != "" {
				exclude = append(exclude, e)
			}
		}
		if len(exclude) == 0 {
			exclude = config.Exclude()
		}
		p.Copy = append(p.Copy, plan.CopyStep{
			From:      abs,
			Exclude:   exclude,
			Overwrite: initOverwrite || config.Bool(config.KeyOverwrite),
		})
	}

	for _, raw := range initDownloads {
		name, err := assetName(raw)
		if err != nil {
			return nil, err
		}
		p.Download = append(p.Download, plan.Asset{
			URL: raw,
			To:  filepath.Join(initDownloadDir, name),
		})
	}

	return p, nil
}

// assetName derives the local file name for a download URL.
func assetName(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("parsing download URL %q: %w", raw, err)
	}
	name := path.Base(u.Path)
	if u.Scheme == "" || name == "." || name == "/" {
		return "", fmt.Errorf("download URL %q must be absolute and end in a file name", raw)
	}
	return name, nil
}

func newDownloader(w io.Writer) *download.Downloader {
	opts := []download.Option{
		download.WithLogger(console.NewLogger(w)),
	}
	if config.Bool(config.KeyProgress) && !initNoProgress {
		opts = append(opts, download.WithIndicator(func() download.Indicator {
			return download.NewBar(w)
		}))
	}
	return download.New(opts...)
}

// confirm shows what is about to happen and asks for a yes/no answer.
// An empty answer counts as yes.
func confirm(r io.Reader, w io.Writer, root string, p *plan.Plan) (bool, error) {
	fmt.Fprintf(w, "Setting up Nightwatch in %s\n", console.Highlight(console.StripControlChars(root)))
	for _, c := range p.Clean {
		fmt.Fprintf(w, "  remove    %s\n", console.StripControlChars(c))
	}
	for _, c := range p.Copy {
		fmt.Fprintf(w, "  copy      %s\n", console.StripControlChars(c.From))
	}
	for _, d := range p.Download {
		fmt.Fprintf(w, "  download  %s\n", console.StripControlChars(d.URL))
	}
	fmt.Fprint(w, "\nProceed? (Y/n) ")

	answer, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && err != io.EOF {
		return false, fmt.Errorf("reading answer: %w", err)
	}
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "", "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}

func printSummary(w io.Writer, report *scaffold.Report, req *scaffold.Request) {
	sym := console.StatusSymbols()
	fmt.Fprintf(w, "\n%s Nightwatch project ready in %s\n", console.Success(sym.OK), console.StripControlChars(report.Root))
	if req.HasOption(scaffold.OptionNewProject) {
		fmt.Fprintln(w, "  Next: run 'npm install nightwatch --save-dev' to add Nightwatch to the new project.")
	}
	fmt.Fprintln(w, "  Run your tests with 'npx nightwatch'.")
}
