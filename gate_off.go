//go:build taglog_off

package taglog

// devEnabled is false under the taglog_off build tag: development entry
// points early-return on a compile-time constant, so the compiler strips
// their bodies entirely. [Logger.Error], tag queries, history access, and
// settings application stay live.
const devEnabled = false
