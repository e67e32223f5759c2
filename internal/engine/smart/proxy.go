package smart

// CachedProxy returns a flat copy of n stamped with n's current version.
// The copy is cached on n and reused until n's version advances. Leaves
// and proxies are already flat and return themselves.
func (n *Node) CachedProxy() *Node {
	switch n.kind {
	case KindLeaf, KindProxy:
		return n
	}
	v := n.Version()
	if p := n.proxy.Load(); p != nil && p.proxyVersion == v {
		return p
	}
	frozen := n.freeze()
	chars := frozen.AppendRunes(make([]rune, 0, frozen.Len()))
	p := &Node{
		kind:         KindProxy,
		length:       len(chars),
		serial:       v,
		chars:        chars,
		base:         n,
		frozen:       frozen,
		proxyVersion: v,
	}
	n.proxy.Store(p)
	return p
}

// IsStale reports whether a proxy no longer matches the node it was taken
// from. Other kinds are never stale.
func (n *Node) IsStale() bool {
	return n.kind == KindProxy && n.proxyVersion != n.base.Version()
}

// Original returns the node a proxy was taken from, or n itself.
func (n *Node) Original() *Node {
	if n.kind == KindProxy {
		return n.base
	}
	return n
}

// ProxyVersion returns the version a proxy was taken at, or n's version
// for other kinds.
func (n *Node) ProxyVersion() uint64 {
	if n.kind == KindProxy {
		return n.proxyVersion
	}
	return n.Version()
}
