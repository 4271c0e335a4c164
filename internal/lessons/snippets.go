package lessons

const helloSnippet = `package main

import "fmt"

func Run() {
	fmt.Println("Hello, world!")
}
`

const variablesSnippet = `package main

import "fmt"

func Run() {
	x := 5
	fmt.Printf("The value of x is: %d\n", x)

	{
		x := x + 1
		{
			x := x * 2
			fmt.Printf("The value of x in the inner scope is: %d\n", x)
		}
		fmt.Printf("The value of x is: %d\n", x)
	}
}
`
