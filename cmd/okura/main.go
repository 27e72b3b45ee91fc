// cmd/okura/main.go
package main

func main() {
	Execute()
}
