// Package script runs enemy pilots written in Lua.
//
// A script defines a global function decide(view) returning a table
// {turn = <radians>, thrust = <bool>, fire = <bool>}. The view table carries
// tick, width, height, aggression and two ship tables, self and target, each
// with x, y, vx, vy, heading and alive. The global rand() returns a uniform
// number in [0, 1) drawn from the world's random source.
package script

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	lua "github.com/yuin/gopher-lua"

	"github.com/vovakirdan/tui-spacewar/internal/games/spacewar/core"
)

// Pilot wraps a single gopher-lua VM. Single-goroutine access only.
type Pilot struct {
	vm     *lua.LState
	log    *log.Logger
	src    core.Source
	decide lua.LValue
}

// Load runs the script at path and returns a pilot bound to its decide function.
func Load(path string, logger *log.Logger) (*Pilot, error) {
	p := newPilot(logger)
	if err := p.vm.DoFile(path); err != nil {
		p.vm.Close()
		return nil, fmt.Errorf("script: load %s: %w", path, err)
	}
	return p.bind(path)
}

// LoadString runs an in-memory script.
func LoadString(source string, logger *log.Logger) (*Pilot, error) {
	p := newPilot(logger)
	if err := p.vm.DoString(source); err != nil {
		p.vm.Close()
		return nil, fmt.Errorf("script: load: %w", err)
	}
	return p.bind("<string>")
}

func newPilot(logger *log.Logger) *Pilot {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	p := &Pilot{
		vm:  lua.NewState(lua.Options{SkipOpenLibs: false}),
		log: logger,
	}
	p.vm.SetGlobal("API_VERSION", lua.LNumber(1))
	p.vm.SetGlobal("rand", p.vm.NewFunction(func(L *lua.LState) int {
		v := 0.5
		if p.src != nil {
			v = p.src.Float64()
		}
		L.Push(lua.LNumber(v))
		return 1
	}))
	return p
}

func (p *Pilot) bind(name string) (*Pilot, error) {
	fn := p.vm.GetGlobal("decide")
	if fn.Type() != lua.LTFunction {
		p.vm.Close()
		return nil, fmt.Errorf("script: %s does not define decide(view)", name)
	}
	p.decide = fn
	p.log.Debug("loaded lua pilot", "file", name)
	return p, nil
}

// Decide calls decide(view). Script errors are logged and yield an idle intent.
func (p *Pilot) Decide(view core.PilotView, src core.Source) core.Intent {
	p.src = src
	defer func() { p.src = nil }()

	t := p.vm.NewTable()
	t.RawSetString("tick", lua.LNumber(view.Tick))
	t.RawSetString("width", lua.LNumber(view.Width))
	t.RawSetString("height", lua.LNumber(view.Height))
	t.RawSetString("aggression", lua.LNumber(view.Aggression))
	t.RawSetString("self", p.shipTable(view.Self))
	t.RawSetString("target", p.shipTable(view.Target))

	if err := p.vm.CallByParam(lua.P{
		Fn:      p.decide,
		NRet:    1,
		Protect: true,
	}, t); err != nil {
		p.log.Error("lua decide error", "err", err)
		return core.Intent{}
	}

	result := p.vm.Get(-1)
	p.vm.Pop(1)

	rt, ok := result.(*lua.LTable)
	if !ok {
		p.log.Error("lua decide returned non-table", "type", result.Type().String())
		return core.Intent{}
	}

	return core.Intent{
		Turn:   float64(lua.LVAsNumber(rt.RawGetString("turn"))),
		Thrust: lua.LVAsBool(rt.RawGetString("thrust")),
		Fire:   lua.LVAsBool(rt.RawGetString("fire")),
	}
}

func (p *Pilot) shipTable(s core.ShipView) *lua.LTable {
	t := p.vm.NewTable()
	t.RawSetString("x", lua.LNumber(s.Pos.X))
	t.RawSetString("y", lua.LNumber(s.Pos.Y))
	t.RawSetString("vx", lua.LNumber(s.Vel.X))
	t.RawSetString("vy", lua.LNumber(s.Vel.Y))
	t.RawSetString("heading", lua.LNumber(s.Heading))
	t.RawSetString("alive", lua.LBool(s.Alive))
	return t
}

// Close releases the VM.
func (p *Pilot) Close() {
	p.vm.Close()
}
