package testutils

import (
	"github.com/itbasis/go-clock"
)

type TestController struct {
	Clock    clock.Clock
	fakePDGA *FakePDGAServer
	FakeSMS  *FakeSMSServer
}

func (c *TestController) Close() {
	c.fakePDGA.Close()
	c.FakeSMS.Close()
}

func (c *TestController) PDGAURL() string {
	return c.fakePDGA.URL()
}

func NewTestController(db *TestDB) *TestController {
	return &TestController{
		Clock:    db.Clock,
		fakePDGA: NewFakePDGAServer(),
		FakeSMS:  NewFakeSMSServer(),
	}
}
