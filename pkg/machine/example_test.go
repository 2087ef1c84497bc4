package machine_test

import (
	"fmt"

	"github.com/dmitrymomot/machine/pkg/machine"
)

type switchState string

type toggle struct{}

// Every switch state accepts every event, so Apply never fails.
func (s switchState) Apply(toggle) (switchState, error) {
	if s == "on" {
		return "off", nil
	}
	return "on", nil
}

func Example() {
	m := machine.New[switchState, toggle]("off")
	fmt.Println(m.State)

	_ = m.Dispatch(toggle{})
	fmt.Println(m.State)

	_ = m.Dispatch(toggle{})
	fmt.Println(m.State)
	// Output:
	// off
	// on
	// off
}

func ExampleMachine_Dispatch() {
	m := machine.New[doorState, doorEvent](closed)

	if err := m.Dispatch(unlock); err != nil {
		fmt.Println(err)
	}
	fmt.Println(m.State)

	if err := m.Dispatch(lock); err == nil {
		fmt.Println(m.State)
	}
	// Output:
	// invalid event 'unlock' for state 'closed'
	// closed
	// locked
}

func ExampleAsTransitionError() {
	m := machine.New[doorState, doorEvent](opened)

	err := m.Dispatch(lock)
	if terr, ok := machine.AsTransitionError[doorState, doorEvent](err); ok {
		fmt.Printf("state=%s event=%s\n", terr.State, terr.Event)
	}
	// Output:
	// state=opened event=lock
}
