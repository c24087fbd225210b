package behavior

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
)

var hookNames = []string{"on_hit", "on_damage", "on_defeat"}

type scriptHooks struct {
	name     string
	compiled *tengo.Compiled
	state    *tengo.Map
}

// LoadScriptHooks compiles a tengo script and binds whichever of on_hit,
// on_damage and on_defeat it defines. The script can call log(msg) and
// portal_state(). A top-level `state` map persists between calls.
func LoadScriptHooks(name string, src []byte, portal Interpreter) (Hooks, error) {
	defined, err := definedHooks(name, src, portal)
	if err != nil {
		return Hooks{}, fmt.Errorf("behavior: compile script %s: %w", name, err)
	}
	if len(defined) == 0 {
		return Hooks{}, nil
	}

	var dispatch strings.Builder
	dispatch.WriteString("\n")
	for i, hook := range defined {
		if i > 0 {
			dispatch.WriteString(" else ")
		}
		fmt.Fprintf(&dispatch, "if __hook == %q {\n\t%s(__info)\n}", hook, hook)
	}
	dispatch.WriteString("\n")

	script := newHookScript(append(append([]byte{}, src...), dispatch.String()...), portal)
	var compiled *tengo.Compiled
	err = guard(name, func() (err error) {
		compiled, err = script.Compile()
		return err
	})
	if err != nil {
		return Hooks{}, fmt.Errorf("behavior: compile script %s: %w", name, err)
	}
	sh := &scriptHooks{name: name, compiled: compiled, state: &tengo.Map{Value: map[string]tengo.Object{}}}

	var hooks Hooks
	for _, hook := range defined {
		switch hook {
		case "on_hit":
			hooks.OnHit = func(info HitInfo) { sh.run("on_hit", hitInfoObject(info)) }
		case "on_damage":
			hooks.OnDamage = func(info HitInfo) { sh.run("on_damage", hitInfoObject(info)) }
		case "on_defeat":
			hooks.OnDefeat = func(kind string) {
				sh.run("on_defeat", &tengo.Map{Value: map[string]tengo.Object{"kind": &tengo.String{Value: kind}}})
			}
		}
	}
	return hooks, nil
}

func newHookScript(src []byte, portal Interpreter) *tengo.Script {
	script := tengo.NewScript(src)
	_ = script.Add("__hook", "")
	_ = script.Add("__info", map[string]any{})
	_ = script.Add("state", map[string]any{})
	_ = script.Add("log", &tengo.UserFunction{Name: "log", Value: func(args ...tengo.Object) (tengo.Object, error) {
		parts := make([]string, 0, len(args))
		for _, a := range args {
			s, _ := tengo.ToString(a)
			parts = append(parts, s)
		}
		log.Printf("script: %s", strings.Join(parts, " "))
		return tengo.UndefinedValue, nil
	}})
	_ = script.Add("portal_state", &tengo.UserFunction{Name: "portal_state", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if portal == nil {
			return &tengo.String{Value: ""}, nil
		}
		return &tengo.String{Value: portal.State()}, nil
	}})
	script.SetImports(stdlib.GetModuleMap("math", "fmt", "text"))
	return script
}

// definedHooks runs the script once without dispatch and reports which hook
// functions it assigned.
func definedHooks(name string, src []byte, portal Interpreter) ([]string, error) {
	var compiled *tengo.Compiled
	err := guard(name, func() (err error) {
		if compiled, err = newHookScript(src, portal).Compile(); err != nil {
			return err
		}
		return compiled.Run()
	})
	if err != nil {
		return nil, err
	}
	var out []string
	for _, hook := range hookNames {
		if compiled.IsDefined(hook) {
			out = append(out, hook)
		}
	}
	return out, nil
}

func (sh *scriptHooks) run(hook string, info tengo.Object) {
	if err := sh.compiled.Set("__hook", hook); err != nil {
		log.Printf("behavior: script %s %s: %v", sh.name, hook, err)
		return
	}
	if err := sh.compiled.Set("__info", info); err != nil {
		log.Printf("behavior: script %s %s: %v", sh.name, hook, err)
		return
	}
	if err := sh.compiled.Set("state", sh.state); err != nil {
		log.Printf("behavior: script %s %s: %v", sh.name, hook, err)
		return
	}
	if err := guard(sh.name, sh.compiled.Run); err != nil {
		log.Printf("behavior: script %s %s: %v", sh.name, hook, err)
	}
}

// guard runs fn and turns a panic raised inside the tengo VM, such as an
// integer division by zero, into an error.
func guard(name string, fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("behavior: script %s: %v", name, r)
		}
	}()
	return fn()
}

func hitInfoObject(info HitInfo) *tengo.Map {
	return &tengo.Map{Value: map[string]tengo.Object{
		"kind":   &tengo.String{Value: info.Kind},
		"launch": &tengo.Int{Value: int64(info.Launch)},
		"at_ms":  &tengo.Int{Value: int64(info.At / time.Millisecond)},
	}}
}
