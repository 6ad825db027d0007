package core

// AppState is what an interactive front end shows: the active recipe and
// whether the last generation attempt failed.
type AppState struct {
	Active *Recipe
	Failed bool
}

// Event is a user-driven transition of AppState.
type Event interface {
	apply(AppState) AppState
}

// GenerationSucceeded activates a freshly generated recipe.
type GenerationSucceeded struct {
	Recipe Recipe
}

// GenerationFailed raises the error banner and keeps the active recipe.
type GenerationFailed struct {
	Err error
}

// RecipeSelected activates a stored recipe picked from the recipe book.
type RecipeSelected struct {
	Recipe Recipe
}

func (e GenerationSucceeded) apply(s AppState) AppState {
	r := e.Recipe
	return AppState{Active: &r, Failed: false}
}

func (e GenerationFailed) apply(s AppState) AppState {
	return AppState{Active: s.Active, Failed: true}
}

// The banner stays up until the next generation attempt.
func (e RecipeSelected) apply(s AppState) AppState {
	r := e.Recipe
	return AppState{Active: &r, Failed: s.Failed}
}

// Apply returns the state after ev. The receiver is not modified.
func (s AppState) Apply(ev Event) AppState {
	if ev == nil {
		return s
	}
	return ev.apply(s)
}

// InitialState activates the most recently stored recipe, if any.
func InitialState(records []Record) AppState {
	if len(records) == 0 {
		return AppState{}
	}
	r := records[len(records)-1].Recipe
	return AppState{Active: &r}
}
