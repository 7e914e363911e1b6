package gekko

import (
	"fmt"
	"slices"
)

// StageTarget tells which world a stage's systems run against.
type StageTarget int

const (
	MainTarget StageTarget = iota
	RenderTarget
)

type Stage struct {
	Name   string
	Target StageTarget
}

var (
	First      = Stage{Name: "First", Target: MainTarget}
	PreUpdate  = Stage{Name: "PreUpdate", Target: MainTarget}
	Update     = Stage{Name: "Update", Target: MainTarget}
	PostUpdate = Stage{Name: "PostUpdate", Target: MainTarget}
	Last       = Stage{Name: "Last", Target: MainTarget}

	// Extract is the sync point between the worlds. Its systems run against
	// the render world and may also take a *MainWorld parameter.
	Extract = Stage{Name: "Extract", Target: RenderTarget}
	Prepare = Stage{Name: "Prepare", Target: RenderTarget}
	Render  = Stage{Name: "Render", Target: RenderTarget}
	Cleanup = Stage{Name: "Cleanup", Target: RenderTarget}
)

func defaultMainStages() []Stage {
	return []Stage{First, PreUpdate, Update, PostUpdate, Last}
}

func defaultRenderStages() []Stage {
	return []Stage{Extract, Prepare, Render, Cleanup}
}

type systemScheduleBuilder struct {
	inStage Stage
	system  systemFn
}

func (sched systemScheduleBuilder) InStage(s Stage) systemScheduleBuilder {
	return systemScheduleBuilder{
		system:  sched.system,
		inStage: s,
	}
}

// System wraps a system function. It runs in Update unless InStage says otherwise.
func System(system systemFn) systemScheduleBuilder {
	return systemScheduleBuilder{
		system:  system,
		inStage: Update,
	}
}

type stagePosition int

const (
	stageBefore stagePosition = iota
	stageAfter
)

type stagePositionBuilder struct {
	position stagePosition
	target   Stage
}

func BeforeStage(s Stage) stagePositionBuilder {
	return stagePositionBuilder{
		position: stageBefore,
		target:   s,
	}
}

func AfterStage(s Stage) stagePositionBuilder {
	return stagePositionBuilder{
		position: stageAfter,
		target:   s,
	}
}

// UseStage inserts a new stage next to an existing one. The new stage runs
// against the same world as its neighbour. Nothing may be placed before Extract.
func (app *App) UseStage(stage Stage, where stagePositionBuilder) *App {
	if _, ok := app.systems[stage.Name]; ok {
		panic(fmt.Sprintf("Stage %v already exists", stage.Name))
	}

	stages, target := &app.stages, MainTarget
	stageIdx := stageIndex(app.stages, where.target.Name)
	if -1 == stageIdx {
		stages, target = &app.renderStages, RenderTarget
		stageIdx = stageIndex(app.renderStages, where.target.Name)
	}
	if -1 == stageIdx {
		panic(fmt.Sprintf("Stage %v not found", where.target.Name))
	}

	var insertAt int
	if stageBefore == where.position {
		insertAt = stageIdx
	} else {
		insertAt = stageIdx + 1
	}
	if target == RenderTarget && insertAt == 0 {
		panic(fmt.Sprintf("Stage %v cannot run before %v", stage.Name, Extract.Name))
	}

	stage.Target = target
	*stages = slices.Insert(*stages, insertAt, stage)
	app.systems[stage.Name] = make([]systemFn, 0)

	return app
}

func stageIndex(stages []Stage, name string) int {
	for i, s := range stages {
		if s.Name == name {
			return i
		}
	}
	return -1
}

func (app *App) UseSystem(system systemScheduleBuilder) *App {
	if _, ok := app.systems[system.inStage.Name]; !ok {
		panic(fmt.Sprintf("Stage %v doesn't exist", system.inStage.Name))
	}
	app.systems[system.inStage.Name] = append(app.systems[system.inStage.Name], system.system)
	return app
}
