package system

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"navstack/internal/container"
	"navstack/pkg/logging"
)

// Node is one element of a scene hierarchy. Implementations expose
// their parent so a container can be located from any node beneath its
// attachment point. Nodes are used as map keys and must be comparable.
type Node interface {
	Parent() Node
}

// System owns the process-scoped container indices: a name index and a
// node index with a resolution cache. There are no package-level
// statics; independent systems can coexist in one process.
//
// System implements container.EventSink and fans transition events out
// to subscribers.
type System struct {
	mu          sync.RWMutex
	byName      map[string]*container.Container
	byNode      map[Node]*container.Container
	nodeCache   map[Node]*container.Container
	subscribers []chan container.TransitionEvent
}

// New creates an empty system.
func New() *System {
	return &System{
		byName:    make(map[string]*container.Container),
		byNode:    make(map[Node]*container.Container),
		nodeCache: make(map[Node]*container.Container),
	}
}

// Register adds a container to the name index.
func (s *System) Register(c *container.Container) error {
	if c == nil {
		return fmt.Errorf("cannot register nil container")
	}

	name := c.Name()
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.byName[name]; exists {
		return fmt.Errorf("container %s already registered", name)
	}

	s.byName[name] = c
	logging.Debug("System", "Registered container %s", name)
	return nil
}

// Unregister removes a container from the name index along with its
// node attachments and any cached node resolutions.
func (s *System) Unregister(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, exists := s.byName[name]
	if !exists {
		return fmt.Errorf("container %s: %w", name, container.ErrNotFound)
	}
	delete(s.byName, name)

	for n, attached := range s.byNode {
		if attached == c {
			delete(s.byNode, n)
		}
	}
	for n, cached := range s.nodeCache {
		if cached == c {
			delete(s.nodeCache, n)
		}
	}

	logging.Debug("System", "Unregistered container %s", name)
	return nil
}

// ByName looks a container up by name. A miss is a diagnostic, not a
// failure; callers get (nil, false).
func (s *System) ByName(name string) (*container.Container, bool) {
	s.mu.RLock()
	c, ok := s.byName[name]
	s.mu.RUnlock()

	if !ok {
		logging.Debug("System", "No container registered under name %s", name)
		return nil, false
	}
	return c, true
}

// AttachNode binds a scene node to a container, making the container
// resolvable from that node and any node beneath it.
func (s *System) AttachNode(n Node, c *container.Container) error {
	if n == nil {
		return fmt.Errorf("cannot attach nil node")
	}
	if c == nil {
		return fmt.Errorf("cannot attach node to nil container")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.byName[c.Name()]; !exists {
		return fmt.Errorf("container %s: %w", c.Name(), container.ErrNotFound)
	}
	s.byNode[n] = c
	return nil
}

// DetachNode removes a node binding and any cached resolutions made
// through it.
func (s *System) DetachNode(n Node) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.byNode, n)
	delete(s.nodeCache, n)
}

// ByNode resolves the container owning a scene node by walking the
// parent chain up to the nearest attached node. Resolutions are cached
// per starting node; useCache=false forces a fresh walk and refreshes
// the cache, which callers need after reparenting. A miss is a
// diagnostic, not a failure.
func (s *System) ByNode(n Node, useCache bool) (*container.Container, bool) {
	if n == nil {
		return nil, false
	}

	if useCache {
		s.mu.RLock()
		c, ok := s.nodeCache[n]
		s.mu.RUnlock()
		if ok {
			return c, true
		}
	}

	s.mu.RLock()
	var found *container.Container
	for cur := n; cur != nil; cur = cur.Parent() {
		if c, ok := s.byNode[cur]; ok {
			found = c
			break
		}
	}
	s.mu.RUnlock()

	if found == nil {
		logging.Debug("System", "No container found on node chain")
		return nil, false
	}

	// Cache only while the container is still registered; the walk ran
	// outside the lock and an unregister may have raced it.
	s.mu.Lock()
	if s.byName[found.Name()] == found {
		s.nodeCache[n] = found
	}
	s.mu.Unlock()
	return found, true
}

// Containers returns all registered containers sorted by name.
func (s *System) Containers() []*container.Container {
	s.mu.RLock()
	out := make([]*container.Container, 0, len(s.byName))
	for _, c := range s.byName {
		out = append(out, c)
	}
	s.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool { return out[i].Name() < out[j].Name() })
	return out
}

// Shutdown closes every registered container in name order and clears
// the indices. Containers caught mid-transition refuse to close; their
// errors are aggregated and the remaining containers still shut down.
func (s *System) Shutdown(ctx context.Context) error {
	containers := s.Containers()

	var errs []error
	for _, c := range containers {
		if err := c.Close(ctx); err != nil {
			logging.Error("System", err, "Failed to close container %s during shutdown", c.Name())
			errs = append(errs, fmt.Errorf("close container %s: %w", c.Name(), err))
		}
	}

	s.mu.Lock()
	s.byName = make(map[string]*container.Container)
	s.byNode = make(map[Node]*container.Container)
	s.nodeCache = make(map[Node]*container.Container)
	s.mu.Unlock()

	logging.Info("System", "Shut down %d containers", len(containers))
	return errors.Join(errs...)
}

// SubscribeTransitions returns a channel receiving every transition
// event from containers wired to this system. Delivery is non-blocking;
// events a full subscriber cannot take are dropped and logged.
func (s *System) SubscribeTransitions() <-chan container.TransitionEvent {
	ch := make(chan container.TransitionEvent, 100)
	s.mu.Lock()
	s.subscribers = append(s.subscribers, ch)
	s.mu.Unlock()
	return ch
}

// UnsubscribeTransitions removes a subscriber channel from delivery.
// The channel is not closed; the caller simply stops receiving.
func (s *System) UnsubscribeTransitions(ch <-chan container.TransitionEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, sub := range s.subscribers {
		if (<-chan container.TransitionEvent)(sub) == ch {
			s.subscribers = append(s.subscribers[:i], s.subscribers[i+1:]...)
			return
		}
	}
}

// TransitionFinished implements container.EventSink, fanning the event
// out to all subscribers.
func (s *System) TransitionFinished(ev container.TransitionEvent) {
	s.mu.RLock()
	subscribers := make([]chan container.TransitionEvent, len(s.subscribers))
	copy(subscribers, s.subscribers)
	s.mu.RUnlock()

	for _, sub := range subscribers {
		select {
		case sub <- ev:
		default:
			logging.Debug("System", "Transition event subscriber blocked, dropping event %s", ev.ID)
		}
	}
}
