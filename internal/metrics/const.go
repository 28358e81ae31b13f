package metrics

const Namespace = "art_gallery"
