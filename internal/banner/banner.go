package banner

import "fmt"

const Version = "1.0.0"

func Print() {
	banner := `
 _       __      __       __       __
| |     / /___ _/ /______/ /_  ____/ /___  ____ _
| | /| / / __ '/ __/ ___/ __ \/ __  / __ \/ __ '/
| |/ |/ / /_/ / /_/ /__/ / / / /_/ / /_/ / /_/ /
|__/|__/\__,_/\__/\___/_/ /_/\__,_/\____/\__, /
                                        /____/  v%s - Compliance Monitor
    `
	fmt.Printf(banner, Version)
	fmt.Println("\n------------------------------------------------")
}
