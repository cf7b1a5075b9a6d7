package dptx_test

import (
	"fmt"
	"log"

	"github.com/hupe1980/dptx"
)

// Example_text demonstrates parsing the text forms of a general status value.
func Example_text() {
	t, err := dptx.New(dptx.DptGeneralStatus)
	if err != nil {
		log.Fatal(err)
	}

	// Last token is bit 0
	if err := t.SetText("1 1 0 1"); err != nil {
		log.Fatal(err)
	}
	v, _ := t.Numeric()
	s, _ := t.Text()
	fmt.Println(v, s)
	// Output: 13 InAlarm Overridden OutOfService
}

// Example_rawData demonstrates that raw bytes are validated when read.
func Example_rawData() {
	t, _ := dptx.New(dptx.DptGeneralStatus)

	_ = t.SetData([]byte{0xff}, 0)
	_, err := t.Numeric()
	fmt.Println(err)
	// Output: dptx: value 255 is out of range [0..31]
}

// Example_customSubtype demonstrates registering an application subtype.
func Example_customSubtype() {
	st := dptx.MustSubtype("21.900", dptx.DescriptionOf("PumpStatus"), "Running", "Fault", "Manual")
	dptx.Register(st)

	t, _ := dptx.NewByID("21.900")
	_ = t.SetFlags("Running", "Manual")
	v, _ := t.Numeric()
	fmt.Println(st)
	fmt.Println(v)
	// Output:
	// 21.900: Pump Status, values from 0 to 7
	// 5
}
