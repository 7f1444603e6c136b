// Command planner runs the finance projections against a TOML snapshot.
package main

func main() {
	Execute()
}
