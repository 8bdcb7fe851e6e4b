// Package topics provides topic-based help for the stampname command.
//
// Topics are markdown or text files embedded in the binary, listed and
// shown by the "topics" subcommand. Topics named option-<flag> also answer
// to "--<flag>" and "<flag>".
package topics

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/spf13/cobra"
)

//go:embed content/*.md
var content embed.FS

const optionPrefix = "option-"

// TopicManager manages help topics for a Cobra application
type TopicManager struct {
	topics     map[string]*Topic
	extensions []string
	renderer   Renderer
}

// Topic represents a help topic
type Topic struct {
	Name     string
	FilePath string
	Content  string
}

// Options configures the TopicManager
type Options struct {
	// Extensions is the list of file extensions to consider as topics.
	// Defaults to [".txt", ".md"].
	Extensions []string

	// Renderer formats topic content. Defaults to PlainRenderer.
	Renderer Renderer
}

// Default loads the embedded topics.
func Default(opts Options) (*TopicManager, error) {
	return Load(content, opts)
}

// Load reads every topic file in fsys.
func Load(fsys fs.FS, opts Options) (*TopicManager, error) {
	tm := &TopicManager{
		topics:     make(map[string]*Topic),
		extensions: opts.Extensions,
		renderer:   opts.Renderer,
	}
	if len(tm.extensions) == 0 {
		tm.extensions = []string{".txt", ".md"}
	}
	if tm.renderer == nil {
		tm.renderer = &PlainRenderer{}
	}

	if err := tm.scan(fsys); err != nil {
		return nil, fmt.Errorf("failed to scan topics: %w", err)
	}
	return tm, nil
}

func (tm *TopicManager) scan(fsys fs.FS) error {
	return fs.WalkDir(fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		ext := path.Ext(p)
		if !tm.supported(ext) {
			return nil
		}

		data, err := fs.ReadFile(fsys, p)
		if err != nil {
			return err
		}

		name := strings.TrimSuffix(path.Base(p), ext)
		tm.topics[name] = &Topic{Name: name, FilePath: p, Content: string(data)}
		return nil
	})
}

func (tm *TopicManager) supported(ext string) bool {
	for _, valid := range tm.extensions {
		if ext == valid {
			return true
		}
	}
	return false
}

// GetTopic retrieves a topic by name. "--prefix" and "prefix" both find
// option-prefix when no topic has the bare name.
func (tm *TopicManager) GetTopic(name string) (*Topic, bool) {
	name = strings.TrimPrefix(name, "--")
	name = strings.TrimPrefix(name, "-")

	if topic, ok := tm.topics[name]; ok {
		return topic, true
	}
	topic, ok := tm.topics[optionPrefix+name]
	return topic, ok
}

// ListTopics returns all topic names, sorted.
func (tm *TopicManager) ListTopics() []string {
	names := make([]string, 0, len(tm.topics))
	for name := range tm.topics {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Render returns the rendered content of topic.
func (tm *TopicManager) Render(topic *Topic) string {
	return tm.renderer.Render(topic.Content, path.Ext(topic.FilePath))
}

// WriteList writes the topic index for program.
func (tm *TopicManager) WriteList(cmd *cobra.Command, program string) {
	out := cmd.OutOrStdout()

	var general, options []string
	for _, name := range tm.ListTopics() {
		if strings.HasPrefix(name, optionPrefix) {
			options = append(options, strings.TrimPrefix(name, optionPrefix))
		} else {
			general = append(general, name)
		}
	}

	if len(general)+len(options) == 0 {
		_, _ = fmt.Fprintln(out, "No help topics available.")
		return
	}

	_, _ = fmt.Fprintln(out, "Available help topics:")
	if len(general) > 0 {
		_, _ = fmt.Fprintln(out, "\nGeneral topics:")
		for _, name := range general {
			_, _ = fmt.Fprintf(out, "  %s\n", name)
		}
	}
	if len(options) > 0 {
		_, _ = fmt.Fprintln(out, "\nOption topics:")
		for _, name := range options {
			_, _ = fmt.Fprintf(out, "  --%s\n", name)
		}
	}
	_, _ = fmt.Fprintf(out, "\nUse '%s topics <topic>' to read about a specific topic.\n", program)
}

// Command returns the "topics [name]" subcommand.
func (tm *TopicManager) Command() *cobra.Command {
	return &cobra.Command{
		Use:   "topics [topic]",
		Short: "List help topics or show one",
		Args:  cobra.MaximumNArgs(1),
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			if len(args) > 0 {
				return nil, cobra.ShellCompDirectiveNoFileComp
			}
			return tm.ListTopics(), cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				tm.WriteList(cmd, cmd.Root().Name())
				return nil
			}
			topic, ok := tm.GetTopic(args[0])
			if !ok {
				return fmt.Errorf("unknown help topic %q", args[0])
			}
			_, _ = fmt.Fprint(cmd.OutOrStdout(), tm.Render(topic))
			return nil
		},
	}
}
