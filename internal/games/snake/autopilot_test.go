package snake

import "testing"

func TestAutopilotHeadsForFood(t *testing.T) {
	w := newWorldWith(DefaultGrid(), CanonicalSnake(Position{}), Food{Pos: Position{5, 2}, Active: true}, 1)
	if got := (Autopilot{}).Choose(w); got != DirRight {
		t.Errorf("Choose() = %s, expected right towards the food", got)
	}
}

func TestAutopilotAvoidsWall(t *testing.T) {
	w := newWorldWith(GridConfig{Width: 4, Height: 4}, mustSnake(t, []Position{{1, 3}, {1, 2}, {1, 1}}, DirUp), Food{}, 1)
	if got := (Autopilot{}).Choose(w); got != DirRight {
		t.Errorf("Choose() = %s, expected right (more room than left)", got)
	}
}

func TestAutopilotPlays(t *testing.T) {
	w, err := NewWorld(WorldOptions{Grid: GridConfig{Width: 16, Height: 16}, Seed: 11})
	if err != nil {
		t.Fatal(err)
	}
	var pilot Autopilot
	for i := range 2000 {
		if i%18 == 0 {
			w.OnFoodTick()
		}
		w.SetDirectionIntent(pilot.Choose(w))
		if res := w.OnMovementTick(); res.Won {
			break
		}
	}
	if w.Stats().FoodEaten == 0 {
		t.Error("autopilot should eat at least once in 2000 moves")
	}
}
