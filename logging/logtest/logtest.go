// Package logtest sets up seelog for the tests of other packages.
package logtest

import (
	"fmt"
	"testing"

	log "github.com/cihub/seelog"
)

var testConfig = `
<seelog type="sync" minlevel='%s'>
  <outputs formatid="test">
    <filter levels="critical,error,warn,info">
      <console formatid="test" />
    </filter>
    <filter levels="debug">
      <console formatid="debug" />
    </filter>
  </outputs>
  <formats>
    <format id="test" format="test: [%%LEV] %%Msg%%n" />
    <format id="debug" format="test: [%%LEV] %%Func :: %%Msg%%n" />
  </formats>
</seelog>
`

// Setup logs warnings only, or everything from debug on with go test -v.
func Setup() {
	level := "warn"
	if testing.Verbose() {
		level = "debug"
	}

	logger, err := log.LoggerFromConfigAsBytes([]byte(fmt.Sprintf(testConfig, level)))
	if err != nil {
		fmt.Println(err)
		return
	}

	log.ReplaceLogger(logger)
}
