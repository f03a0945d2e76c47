package jsgen

import (
	"testing"

	"github.com/dop251/goja"
	"github.com/npillmayer/pagescript/script"
	"github.com/stretchr/testify/require"
)

// browserStub emulates the parts of a browser page which generated code
// touches. Calls of interest are recorded in 'calls'.
const browserStub = `
var window = this;
var calls = [];
function record(name) {
	return function() { calls.push(name + '(' + Array.prototype.slice.call(arguments).join(',') + ')'); };
}
var _gradient = { stops: [], addColorStop: function(o, c) { this.stops.push(o + ':' + c); } };
var _ctx = {
	fillRect: record('fillRect'), clearRect: record('clearRect'), strokeRect: record('strokeRect'),
	beginPath: record('beginPath'), moveTo: record('moveTo'), lineTo: record('lineTo'),
	closePath: record('closePath'), fill: record('fill'), stroke: record('stroke'),
	arc: record('arc'), drawImage: function(img) {
		calls.push('drawImage(' + img.id + ',' + Array.prototype.slice.call(arguments, 1).join(',') + ')');
	},
	createLinearGradient: function(x, y, x2, y2) {
		calls.push('createLinearGradient(' + [x, y, x2, y2].join(',') + ')');
		return _gradient;
	}
};
function Sheet() { this.cssRules = []; }
Sheet.prototype.insertRule = function(r, i) { this.cssRules.splice(i, 0, r); return i; };
function Element(tag, id) {
	this.tagName = tag; this.id = id; this.attrs = {}; this.innerHTML = ''; this.children = [];
}
Element.prototype.getAttribute = function(k) { return this.attrs.hasOwnProperty(k) ? this.attrs[k] : null; };
Element.prototype.setAttribute = function(k, v) { this.attrs[k] = String(v); };
Element.prototype.appendChild = function(c) {
	this.children.push(c);
	if (c.tagName === 'style') { document.styleSheets.push(new Sheet()); }
	if (c.tagName === 'script') { document.scripts.push(c); }
	return c;
};
Element.prototype.insertAdjacentHTML = function(pos, h) { calls.push('insertAdjacentHTML(' + pos + ')'); this.innerHTML += h; };
Element.prototype.getContext = function(kind) { return kind === '2d' ? _ctx : null; };
var elements = {};
var _head = new Element('head', '');
var document = {
	body: new Element('body', ''),
	styleSheets: [],
	scripts: [],
	getElementById: function(id) {
		if (!elements[id]) { elements[id] = new Element('div', id); }
		return elements[id];
	},
	getElementsByTagName: function(tag) {
		if (tag === 'head') { return [_head]; }
		if (tag === 'script') { return this.scripts; }
		return [];
	},
	createElement: function(tag) { return new Element(tag, ''); },
	createTextNode: function(s) { return { nodeValue: s }; }
};
function alert(s) { calls.push('alert(' + s + ')'); }
function confirm(s) { calls.push('confirm(' + s + ')'); return true; }
function prompt(s, d) { calls.push('prompt(' + s + ',' + d + ')'); return d; }
function Win(url, name, features) { this.url = url; this.name = name; this.features = features; this.closed = false; }
Win.prototype.close = function() { this.closed = true; };
Win.prototype.focus = record('focus');
Win.prototype.print = record('print');
Win.prototype.moveTo = record('moveTo');
Win.prototype.resizeTo = record('resizeTo');
function open(url, name, features) { calls.push('open(' + name + ')'); return new Win(url, name, features); }
var print = record('print');
var moveTo = record('moveTo');
var resizeTo = record('resizeTo');
`

// runInBrowser executes snippets, in order, against a fresh browser stub.
func runInBrowser(t *testing.T, js ...script.Snippet) *goja.Runtime {
	t.Helper()
	vm := goja.New()
	_, err := vm.RunString(browserStub)
	require.NoError(t, err, "browser stub does not run")
	for _, s := range js {
		_, err = vm.RunString(s.String())
		require.NoError(t, err, "generated code does not run:\n%s", s)
	}
	return vm
}

func evalJS(t *testing.T, vm *goja.Runtime, expr string) string {
	t.Helper()
	v, err := vm.RunString(expr)
	require.NoError(t, err, "cannot evaluate %s", expr)
	return v.String()
}
