package exporters

import "github.com/thatcatcamp/buttonsmith/internal/style"

var (
	reactTemplate = mustParse(FormatReact,
		`function MyButton(){return (<button style={{"{{"}}background:'{{js .Background}}',color:'{{js .Color}}',padding:'{{.Padding}}',borderRadius:'{{.Radius}}px'{{"}}"}}>{{jsx .Label}}</button>);}`)
	vueTemplate = mustParse(FormatVue,
		`<template><button :style="{ background: '{{js .Background | attr}}', color: '{{js .Color | attr}}', padding: '{{.Padding}}', borderRadius: '{{.Radius}}px' }">{{.Label}}</button></template>`)
)

// React renders a function component with an inline style object.
func React(m style.Model) string {
	return render(reactTemplate, declare(m))
}

// Vue renders a single-file-component template with a bound style object.
func Vue(m style.Model) string {
	return render(vueTemplate, declare(m))
}
