// Package logger provides tagged, colored console output.
package logger

import "fmt"

const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorCyan   = "\033[36m"
	colorBold   = "\033[1m"
)

// Info prints a neutral status line.
func Info(tag, msg string) {
	fmt.Printf("%s[%s]%s %s\n", colorCyan, tag, colorReset, msg)
}

// Success prints a green status line.
func Success(tag, msg string) {
	fmt.Printf("%s[%s]%s %s\n", colorGreen, tag, colorReset, msg)
}

// Warn prints a yellow status line.
func Warn(tag, msg string) {
	fmt.Printf("%s[%s]%s %s\n", colorYellow, tag, colorReset, msg)
}

// Error prints a red status line.
func Error(tag, msg string) {
	fmt.Printf("%s[%s]%s %s\n", colorRed, tag, colorReset, msg)
}

// Banner prints the startup banner.
func Banner(version string) {
	fmt.Println()
	fmt.Println(colorBold + "======================================================================" + colorReset)
	fmt.Printf("%s  ELITE DANGEROUS LASER MINING OPTIMIZER %s%s\n", colorBold, version, colorReset)
	fmt.Println(colorBold + "======================================================================" + colorReset)
}

// Section prints a titled separator.
func Section(title string) {
	fmt.Printf("\n%s--- %s ---%s\n", colorBold, title, colorReset)
}

// Stats prints a key/value statistic line.
func Stats(key string, value interface{}) {
	fmt.Printf("  %-22s %v\n", key, value)
}
