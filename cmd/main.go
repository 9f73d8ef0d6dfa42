package main

import (
	"os"

	"github.com/hamidzr/shortcutai/internal/cli"
	"github.com/hamidzr/shortcutai/model"
	"github.com/sirupsen/logrus"
)

func main() {
	cmd := cli.InitCLI()
	err := cmd.Execute()
	code, cause := model.ExitCodeFromError(err)
	if code == model.NoError {
		return
	}
	if cause == nil {
		cause = err
	}
	logrus.Error(cause)
	os.Exit(int(code))
}
