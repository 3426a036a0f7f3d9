package shell

import (
	"sort"

	"github.com/chzyer/readline"
)

// createCompleter creates the tab completion configuration using the
// command registry and live system state. Container names and view
// paths are completed dynamically so completions track registrations
// and stack contents as they change.
func (s *Shell) createCompleter() *readline.PrefixCompleter {
	// Commands that target a container, then a view path
	pathTarget := readline.PcItemDynamic(s.completeContainerNames,
		readline.PcItemDynamic(s.completeKnownPaths))

	// Commands that target only a container
	containerTarget := readline.PcItemDynamic(s.completeContainerNames)

	// Get all command names from the registry for help completion
	commandNames := s.registry.AllCompletions()
	commandCompleters := make([]readline.PrefixCompleterInterface, len(commandNames))
	for i, name := range commandNames {
		commandCompleters[i] = readline.PcItem(name)
	}

	return readline.NewPrefixCompleter(
		readline.PcItem("help", commandCompleters...),
		readline.PcItem("?"),
		readline.PcItem("push", pathTarget),
		readline.PcItem("pop", containerTarget),
		readline.PcItem("front", pathTarget),
		readline.PcItem("btf", pathTarget),
		readline.PcItem("find", pathTarget),
		readline.PcItem("stack", containerTarget),
		readline.PcItem("ls", containerTarget),
		readline.PcItem("pool", containerTarget),
		readline.PcItem("containers"),
		readline.PcItem("ps"),
		readline.PcItem("watch",
			readline.PcItem("on"),
			readline.PcItem("off"),
		),
		readline.PcItem("exit"),
		readline.PcItem("quit"),
	)
}

// completeContainerNames returns the names of all registered containers.
func (s *Shell) completeContainerNames(line string) []string {
	containers := s.sys.Containers()
	names := make([]string, len(containers))
	for i, c := range containers {
		names[i] = c.Name()
	}
	return names
}

// completeKnownPaths returns every view path the system currently knows
// about, gathered from container stacks and pools. The shell cannot
// enumerate loadable paths in general, so completion offers what has
// been seen.
func (s *Shell) completeKnownPaths(line string) []string {
	seen := make(map[string]struct{})
	for _, c := range s.sys.Containers() {
		for _, path := range c.Paths() {
			seen[path] = struct{}{}
		}
		for _, path := range c.Pool().Paths() {
			seen[path] = struct{}{}
		}
	}

	paths := make([]string, 0, len(seen))
	for path := range seen {
		paths = append(paths, path)
	}
	sort.Strings(paths)
	return paths
}

// filterInput filters input characters for readline
func filterInput(r rune) (rune, bool) {
	switch r {
	// block CtrlZ feature
	case readline.CharCtrlZ:
		return r, false
	}
	return r, true
}
