package logging

import (
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

// CommandWrapper turns a handler into a cli.ActionFunc that logs one line per
// invocation with the data and timings the handler collected.
func CommandWrapper(
	loggingName string,
	log *logrus.Logger,
	handler func(*cli.Context, *LogData) error,
) cli.ActionFunc {
	return func(c *cli.Context) error {
		logData := NewLogData(log)
		c.Context = WithLogData(c.Context, logData)

		log.Debugf("Command.%v.Start", loggingName)

		endTimer := logData.AddTiming("duration")
		err := handler(c, logData)
		endTimer()
		if err != nil {
			logData.Log().WithError(err).Errorf("Command.%v.Error", loggingName)
			return err
		}

		logData.Log().Infof("Command.%v.Complete", loggingName)
		return nil
	}
}
