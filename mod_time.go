package gekko

import (
	"time"
)

type Time struct {
	Time time.Time
	Dt   time.Duration
}

func (t Time) Clone() Time {
	return t
}

// TimeModule keeps a frame clock in the main world and extracts it so
// render stages see the same Time as the frame they draw.
type TimeModule struct {
}

func (mod TimeModule) Install(app *App, cmd *Commands) {
	cmd.AddResources(&Time{
		Time: time.Now(),
		Dt:   0,
	})
	cmd.UseSystem(System(timeSystem).InStage(First))
	app.UseModules(ExtractResource[Time]())
}

func timeSystem(timeResource *Time) {
	now := time.Now()

	timeResource.Dt = now.Sub(timeResource.Time)
	timeResource.Time = now
}
