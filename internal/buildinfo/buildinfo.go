package buildinfo

const ProjectName = "sketchy"

const GithubURL = "https://github.com/bloops-games/sketchy"

const Graffiti = `
     _        _       _
 ___| | _____| |_ ___| |__  _   _
/ __| |/ / _ \ __/ __| '_ \| | | |
\__ \   <  __/ || (__| | | | |_| |
|___/_|\_\___|\__\___|_| |_|\__, |
                            |___/
`

// GreetingCLI takes the project name, version and repository URL.
const GreetingCLI = `
%s %s
Draw, guess, swap. Two players over one connection.
%s

`
