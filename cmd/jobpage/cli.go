package main

import (
	"context"
	"io"
	"time"

	"github.com/fwojciec/jobpage"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	Config    jobpage.Config
	Extractor jobpage.Extractor
	Builder   *jobpage.Builder
	Renderer  jobpage.Renderer
	Converter jobpage.Converter
	Fetcher   jobpage.Fetcher
	Publisher jobpage.Publisher
	Jobs      jobpage.JobService
	Now       func() time.Time
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Debug bool `help:"Log operations to stderr"`

	DB         string `name:"db" env:"JOBPAGE_DB" help:"SQLite database path"`
	Country    string `env:"JOBPAGE_COUNTRY" default:"United Kingdom" help:"Location used when none is found"`
	Domain     string `env:"JOBPAGE_DOMAIN" default:"uk.job.web.id" help:"Publishing domain"`
	Repo       string `env:"JOBPAGE_REPO" default:"roywikan/job-uk" help:"Publishing repository (owner/name)"`
	Branch     string `env:"JOBPAGE_BRANCH" default:"main" help:"Publishing branch"`
	Token      string `env:"GITHUB_TOKEN" help:"GitHub token used for publishing"`
	SalaryUnit string `env:"JOBPAGE_SALARY_UNIT" default:"YEAR" enum:"HOUR,WEEK,MONTH,YEAR" help:"Salary unit used when none is detected"`
	PageSize   int    `env:"JOBPAGE_PAGE_SIZE" default:"12" help:"Job cards per index page"`
	Hashtags   int    `env:"JOBPAGE_HASHTAGS" default:"7" help:"Maximum number of hashtags per job"`
	SiteName   string `name:"site-name" env:"JOBPAGE_SITE_NAME" default:"UK Jobs" help:"Heading of the index pages"`

	Parse   ParseCmd   `cmd:"" help:"Parse a job snapshot and print the result"`
	Publish PublishCmd `cmd:"" help:"Parse a job snapshot and publish its page"`
	Index   IndexCmd   `cmd:"" help:"Regenerate the index pages"`
	List    ListCmd    `cmd:"" help:"List stored jobs"`
	Delete  DeleteCmd  `cmd:"" help:"Delete a stored job"`
}

// Config returns the job page configuration described by the flags.
func (c *CLI) Config() jobpage.Config {
	config := jobpage.DefaultConfig()
	config.DefaultLocation = c.Country
	config.Domain = c.Domain
	config.Repo = c.Repo
	config.Branch = c.Branch
	config.SalaryUnit = c.SalaryUnit
	config.PageSize = c.PageSize
	config.HashtagCount = c.Hashtags
	config.SiteName = c.SiteName
	return config
}

// ParseCmd is the "parse" subcommand.
type ParseCmd struct {
	Input  string `arg:"" optional:"" default:"-" help:"Snapshot file, or - for stdin"`
	URL    string `name:"url" help:"Fetch the snapshot from a URL instead"`
	Format string `short:"f" default:"json" enum:"html,json,jsonld,markdown" help:"Output format (html, json, jsonld, markdown)"`
	Edit   string `help:"JSON file of manual edits applied after parsing"`
}

// PublishCmd is the "publish" subcommand.
type PublishCmd struct {
	Input string `arg:"" help:"Snapshot file, or - for stdin"`
	Local string `help:"Publish into a local directory instead of GitHub"`
	Save  bool   `help:"Also store the parsed job in the database"`
	Edit  string `help:"JSON file of manual edits applied after parsing"`
}

// IndexCmd is the "index" subcommand.
type IndexCmd struct {
	Local string `help:"Regenerate a local directory instead of GitHub"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct {
	Company string `help:"Only list jobs from this company"`
	Limit   int    `short:"n" help:"Maximum number of jobs to list"`
}

// DeleteCmd is the "delete" subcommand.
type DeleteCmd struct {
	Slug  string `arg:"" help:"Job slug"`
	Force bool   `help:"Confirm deletion"`
}
