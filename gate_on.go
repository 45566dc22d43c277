//go:build !taglog_off

package taglog

// devEnabled is true in default builds: development entry points ([Logger.Log],
// [Logger.LogValue], [Logger.Fast], [Logger.FastContext], [Logger.Show],
// [Logger.ActivateTag], [Logger.DeactivateTag]) are compiled in.
const devEnabled = true
