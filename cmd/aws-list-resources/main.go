// aws-list-resources enumerates the resources of an AWS account using the
// Cloud Control API.
package main

func main() {
	Execute()
}
